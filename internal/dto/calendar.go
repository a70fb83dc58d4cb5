package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// CreateCalendarRequest defines the data needed to create a calendar.
// Personal calendars are always owned by the caller.
type CreateCalendarRequest struct {
	Name  string               `json:"name" binding:"required"`
	Scope domain.CalendarScope `json:"scope" binding:"required,oneof=household personal"`
	Color string               `json:"color"`
}

// CalendarResponse defines the data returned for a calendar.
type CalendarResponse struct {
	CalendarID  string               `json:"calendarID"`
	Name        string               `json:"name"`
	Scope       domain.CalendarScope `json:"scope"`
	OwnerUserID string               `json:"ownerUserID,omitempty"`
	IsDefault   bool                 `json:"isDefault"`
	Color       string               `json:"color,omitempty"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ToCalendarResponse converts a domain.Calendar to CalendarResponse.
func ToCalendarResponse(c *domain.Calendar) CalendarResponse {
	return CalendarResponse{
		CalendarID:  c.CalendarID,
		Name:        c.Name,
		Scope:       c.Scope,
		OwnerUserID: c.OwnerUserID,
		IsDefault:   c.IsDefault,
		Color:       c.Color,
		CreatedAt:   c.CreatedAt,
	}
}

// ListCalendarsResponse wraps the list of calendars.
type ListCalendarsResponse struct {
	Calendars []CalendarResponse `json:"calendars"`
}

// CreateEventRequest defines the data needed to create an event.
type CreateEventRequest struct {
	CalendarID string    `json:"calendarID" binding:"required"`
	Title      string    `json:"title" binding:"required"`
	Notes      string    `json:"notes"`
	Location   string    `json:"location"`
	Start      time.Time `json:"start" binding:"required"`
	End        time.Time `json:"end" binding:"required"`
	AllDay     bool      `json:"allDay"`
	Tags       []string  `json:"tags"`
	RRule      string    `json:"rrule"`
}

// UpdateEventRequest defines the fields that may change on an event.
type UpdateEventRequest struct {
	Title    *string    `json:"title"`
	Notes    *string    `json:"notes"`
	Location *string    `json:"location"`
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
	AllDay   *bool      `json:"allDay"`
	Tags     *[]string  `json:"tags"`
	RRule    *string    `json:"rrule"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	CalendarID string     `form:"calendar_id"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID    string    `json:"eventID"`
	CalendarID string    `json:"calendarID"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	Location   string    `json:"location,omitempty"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	AllDay     bool      `json:"allDay"`
	Tags       []string  `json:"tags,omitempty"`
	RRule      string    `json:"rrule,omitempty"`
	SourceType string    `json:"sourceType,omitempty"`
	SourceID   string    `json:"sourceID,omitempty"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToEventResponse converts a domain.Event to EventResponse.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:    e.EventID,
		CalendarID: e.CalendarID,
		Title:      e.Title,
		Notes:      e.Notes,
		Location:   e.Location,
		Start:      e.Start,
		End:        e.End,
		AllDay:     e.AllDay,
		Tags:       e.Tags,
		RRule:      e.RRule,
		SourceType: e.SourceType,
		SourceID:   e.SourceID,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
	}
}

// ListEventsResponse wraps the list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToListEventsResponse converts domain events into the list response.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	res := make([]EventResponse, len(events))
	for i := range events {
		res[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: res}
}

// CreateReminderRequest defines the data needed to create a reminder.
type CreateReminderRequest struct {
	EventID       string                 `json:"eventID" binding:"required"`
	OffsetMinutes int                    `json:"offsetMinutes" binding:"required,min=0"`
	Channel       domain.ReminderChannel `json:"channel" binding:"omitempty,oneof=inapp email"`
	Message       string                 `json:"message"`
}

// UpdateReminderRequest defines the fields that may change on a reminder.
type UpdateReminderRequest struct {
	OffsetMinutes *int                   `json:"offsetMinutes" binding:"omitempty,min=0"`
	Status        *domain.ReminderStatus `json:"status" binding:"omitempty,oneof=scheduled sent snoozed"`
	SnoozedUntil  *time.Time             `json:"snoozedUntil"`
}

// ReminderResponse defines the data returned for a reminder.
type ReminderResponse struct {
	ReminderID    string                 `json:"reminderID"`
	EventID       string                 `json:"eventID"`
	OffsetMinutes int                    `json:"offsetMinutes"`
	Channel       domain.ReminderChannel `json:"channel"`
	Status        domain.ReminderStatus  `json:"status"`
	Message       string                 `json:"message,omitempty"`
	TriggerTime   time.Time              `json:"triggerTime"`
	SnoozedUntil  *time.Time             `json:"snoozedUntil,omitempty"`
}

// ToReminderResponse converts a domain.Reminder to ReminderResponse.
func ToReminderResponse(r *domain.Reminder) ReminderResponse {
	return ReminderResponse{
		ReminderID:    r.ReminderID,
		EventID:       r.EventID,
		OffsetMinutes: r.OffsetMinutes,
		Channel:       r.Channel,
		Status:        r.Status,
		Message:       r.Message,
		TriggerTime:   r.TriggerTime,
		SnoozedUntil:  r.SnoozedUntil,
	}
}

// ListRemindersResponse wraps the list of reminders.
type ListRemindersResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// AgendaParams defines the horizon query for the agenda view.
type AgendaParams struct {
	Days int `form:"days,default=7" binding:"min=1,max=90"`
}
