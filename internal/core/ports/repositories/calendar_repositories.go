package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// CalendarReader defines read operations for calendar data.
type CalendarReader interface {
	// FindCalendarByID retrieves a calendar by its unique identifier.
	FindCalendarByID(ctx context.Context, calendarID string) (*domain.Calendar, error)

	// ListCalendars retrieves all calendars.
	ListCalendars(ctx context.Context) ([]domain.Calendar, error)

	// FindDefaultHouseholdCalendar retrieves the default household calendar, if any.
	FindDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error)
}

// CalendarWriter defines write operations for calendar data.
type CalendarWriter interface {
	// SaveCalendar persists a new calendar.
	SaveCalendar(ctx context.Context, calendar domain.Calendar) error

	// UpdateCalendar updates an existing calendar's details.
	UpdateCalendar(ctx context.Context, calendar domain.Calendar) error

	// DeleteCalendar removes a calendar and, via the schema, its events.
	DeleteCalendar(ctx context.Context, calendarID string) error
}

// EventReader defines read operations for event data.
type EventReader interface {
	// FindEventByID retrieves an event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)

	// FindEventBySource retrieves the event generated from the given source,
	// if one exists. Generation idempotence hangs off this lookup.
	FindEventBySource(ctx context.Context, sourceType, sourceID string) (*domain.Event, error)

	// ListEventsByCalendars retrieves events on the given calendars whose start
	// falls within [from, to], sorted by start ascending.
	ListEventsByCalendars(ctx context.Context, calendarIDs []string, from, to time.Time) ([]domain.Event, error)
}

// EventWriter defines write operations for event data.
type EventWriter interface {
	// SaveEvent persists a new event.
	SaveEvent(ctx context.Context, event domain.Event) error

	// SaveEventWithReminder persists an event and its reminder in one store
	// transaction, so bill generation cannot leave an event without a reminder.
	SaveEventWithReminder(ctx context.Context, event domain.Event, reminder domain.Reminder) error

	// UpdateEvent updates an existing event's details.
	UpdateEvent(ctx context.Context, event domain.Event) error

	// DeleteEvent removes an event and, via the schema, its reminders.
	DeleteEvent(ctx context.Context, eventID string) error
}

// ReminderReader defines read operations for reminder data.
type ReminderReader interface {
	// FindReminderByID retrieves a reminder by its unique identifier.
	FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error)

	// ListRemindersByEvent retrieves all reminders attached to an event.
	ListRemindersByEvent(ctx context.Context, eventID string) ([]domain.Reminder, error)
}

// ReminderWriter defines write operations for reminder data.
type ReminderWriter interface {
	// SaveReminder persists a new reminder.
	SaveReminder(ctx context.Context, reminder domain.Reminder) error

	// UpdateReminder updates an existing reminder's details.
	UpdateReminder(ctx context.Context, reminder domain.Reminder) error

	// DeleteReminder removes a reminder.
	DeleteReminder(ctx context.Context, reminderID string) error
}

// CalendarRepositoryFacade combines all calendar-related repository interfaces.
type CalendarRepositoryFacade interface {
	CalendarReader
	CalendarWriter
}

// EventRepositoryFacade combines all event-related repository interfaces.
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}

// ReminderRepositoryFacade combines all reminder-related repository interfaces.
type ReminderRepositoryFacade interface {
	ReminderReader
	ReminderWriter
}
