package domain

import "time"

// Event tags used by the frontend for grouping and colouring.
const (
	TagPersonal = "Personal"
	TagFamily   = "Family"
	TagBills    = "Bills"
	TagWork     = "Work"
	TagHealth   = "Health"
)

// Source types for generated events.
const (
	EventSourceBill   = "bill"
	EventSourceManual = "manual"
)

// Event is a calendar entry. Auto-generated events back-reference their
// origin via SourceType/SourceID so generation stays idempotent.
type Event struct {
	EventID    string    `json:"eventID"`
	CalendarID string    `json:"calendarID"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes,omitempty"`
	Location   string    `json:"location,omitempty"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	AllDay     bool      `json:"allDay"`
	Tags       []string  `json:"tags,omitempty"`
	RRule      string    `json:"rrule,omitempty"` // RFC 5545 RRULE string
	SourceType string    `json:"sourceType,omitempty"`
	SourceID   string    `json:"sourceID,omitempty"`
	AuditFields
}
