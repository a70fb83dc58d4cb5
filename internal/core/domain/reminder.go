package domain

import "time"

// ReminderChannel is the delivery mechanism of a reminder.
type ReminderChannel string

const (
	ChannelInApp ReminderChannel = "inapp"
	ChannelEmail ReminderChannel = "email"
)

// ReminderStatus is the lifecycle state of a reminder.
type ReminderStatus string

const (
	ReminderScheduled ReminderStatus = "scheduled"
	ReminderSent      ReminderStatus = "sent"
	ReminderSnoozed   ReminderStatus = "snoozed"
)

// DefaultBillReminderOffset is the lead time for auto-generated bill
// reminders: 24 hours before the event starts.
const DefaultBillReminderOffset = 1440

// Reminder fires OffsetMinutes before its event starts.
type Reminder struct {
	ReminderID    string          `json:"reminderID"`
	EventID       string          `json:"eventID"`
	OffsetMinutes int             `json:"offsetMinutes"`
	Channel       ReminderChannel `json:"channel"`
	Status        ReminderStatus  `json:"status"`
	Message       string          `json:"message,omitempty"`
	TriggerTime   time.Time       `json:"triggerTime"`
	SentAt        *time.Time      `json:"sentAt,omitempty"`
	SnoozedUntil  *time.Time      `json:"snoozedUntil,omitempty"`
	AuditFields
}

// TriggerTimeFor computes when a reminder fires for an event starting at start.
func TriggerTimeFor(start time.Time, offsetMinutes int) time.Time {
	return start.Add(-time.Duration(offsetMinutes) * time.Minute)
}
