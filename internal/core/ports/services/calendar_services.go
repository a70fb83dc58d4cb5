package services

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/dto"
)

// CalendarSvcFacade manages calendars and enforces their visibility rules.
type CalendarSvcFacade interface {
	CreateCalendar(ctx context.Context, actor domain.Actor, req dto.CreateCalendarRequest) (*domain.Calendar, error)
	GetCalendarByID(ctx context.Context, actor domain.Actor, calendarID string) (*domain.Calendar, error)

	// ListCalendars returns only the calendars the actor may read.
	ListCalendars(ctx context.Context, actor domain.Actor) ([]domain.Calendar, error)

	// ReadableCalendarIDs returns the ids of calendars the actor may read.
	ReadableCalendarIDs(ctx context.Context, actor domain.Actor) ([]string, error)

	DeleteCalendar(ctx context.Context, actor domain.Actor, calendarID string) error

	// EnsureDefaultHouseholdCalendar upserts the shared household calendar
	// and returns it. Idempotent.
	EnsureDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error)
}

// EventSvcFacade manages calendar events under the calendar access rules.
type EventSvcFacade interface {
	CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateEventRequest) (*domain.Event, error)
	GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, actor domain.Actor, params dto.ListEventsParams) ([]domain.Event, error)
	UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateEventRequest) (*domain.Event, error)
	DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error
}

// ReminderSvcFacade manages reminders attached to events.
type ReminderSvcFacade interface {
	CreateReminder(ctx context.Context, actor domain.Actor, req dto.CreateReminderRequest) (*domain.Reminder, error)
	ListRemindersByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]domain.Reminder, error)
	UpdateReminder(ctx context.Context, actor domain.Actor, reminderID string, req dto.UpdateReminderRequest) (*domain.Reminder, error)
	DeleteReminder(ctx context.Context, actor domain.Actor, reminderID string) error
}

// ScheduleSvcFacade turns bill definitions into calendar events and builds
// the agenda projection.
type ScheduleSvcFacade interface {
	// GenerateBillEvents creates an event plus default reminder for every
	// active bill that has none yet. Returns how many bills got events.
	// Idempotent with respect to unchanged bill state.
	GenerateBillEvents(ctx context.Context) (int, error)

	// Agenda returns readable events and bill projections within horizonDays.
	Agenda(ctx context.Context, actor domain.Actor, horizonDays int) (*domain.Agenda, error)
}
