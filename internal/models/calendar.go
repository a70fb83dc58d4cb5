package models

import "time"

// CalendarScope mirrors domain.CalendarScope at the storage layer.
type CalendarScope string

// Calendar represents a calendar row.
type Calendar struct {
	CalendarID  string        `db:"calendar_id"`
	Name        string        `db:"name"`
	Scope       CalendarScope `db:"scope"`
	OwnerUserID string        `db:"owner_user_id"` // nullable, personal only
	IsDefault   bool          `db:"is_default"`
	Color       string        `db:"color"`
	AuditFields
}

// Event represents a calendar event row. Tags map to a text[] column.
type Event struct {
	EventID    string    `db:"event_id"`
	CalendarID string    `db:"calendar_id"`
	Title      string    `db:"title"`
	Notes      string    `db:"notes"`
	Location   string    `db:"location"`
	Start      time.Time `db:"start_time"`
	End        time.Time `db:"end_time"`
	AllDay     bool      `db:"all_day"`
	Tags       []string  `db:"tags"`
	RRule      string    `db:"rrule"`
	SourceType string    `db:"source_type"` // nullable
	SourceID   string    `db:"source_id"`   // nullable
	AuditFields
}

// Reminder represents a reminder row attached to an event.
type Reminder struct {
	ReminderID    string     `db:"reminder_id"`
	EventID       string     `db:"event_id"`
	OffsetMinutes int        `db:"offset_minutes"`
	Channel       string     `db:"channel"`
	Status        string     `db:"status"`
	Message       string     `db:"message"`
	TriggerTime   time.Time  `db:"trigger_time"`
	SentAt        *time.Time `db:"sent_at"`
	SnoozedUntil  *time.Time `db:"snoozed_until"`
	AuditFields
}
