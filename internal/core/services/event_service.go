package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// eventService manages calendar events under the calendar access rules.
type eventService struct {
	eventRepo    portsrepo.EventRepositoryFacade
	calendarRepo portsrepo.CalendarRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewEventService creates a new instance of eventService.
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, calendarRepo portsrepo.CalendarRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, calendarRepo: calendarRepo, auditSvc: auditSvc}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// readableCalendar resolves the event's calendar and checks read access.
func (s *eventService) readableCalendar(ctx context.Context, actor domain.Actor, calendarID string) (*domain.Calendar, error) {
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	if !calendar.ReadableBy(actor) {
		return nil, fmt.Errorf("%w: calendar %s", apperrors.ErrNotFound, calendarID)
	}
	return calendar, nil
}

// canMutateEvent reports whether the actor may change an event: its creator
// always can, anyone else needs write access to the calendar.
func (s *eventService) canMutateEvent(ctx context.Context, actor domain.Actor, event *domain.Event) (bool, error) {
	if event.CreatedBy == actor.UserID && actor.CanMutate() {
		return true, nil
	}
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, event.CalendarID)
	if err != nil {
		return false, err
	}
	return calendar.WritableBy(actor), nil
}

// CreateEvent creates an event on a calendar the actor may write to.
func (s *eventService) CreateEvent(ctx context.Context, actor domain.Actor, req dto.CreateEventRequest) (*domain.Event, error) {
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, req.CalendarID)
	if err != nil {
		return nil, err
	}
	if !calendar.WritableBy(actor) {
		return nil, fmt.Errorf("%w: cannot create events on calendar %s", apperrors.ErrForbidden, req.CalendarID)
	}
	if !req.End.After(req.Start) {
		return nil, fmt.Errorf("%w: event end must be after start", apperrors.ErrValidation)
	}

	now := time.Now()
	event := domain.Event{
		EventID:     uuid.NewString(),
		CalendarID:  req.CalendarID,
		Title:       req.Title,
		Notes:       req.Notes,
		Location:    req.Location,
		Start:       req.Start,
		End:         req.End,
		AllDay:      req.AllDay,
		Tags:        req.Tags,
		RRule:       req.RRule,
		SourceType:  domain.EventSourceManual,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "event", event.EventID, map[string]any{
		"title":       event.Title,
		"calendar_id": event.CalendarID,
	})

	return &event, nil
}

// GetEventByID retrieves an event the actor may read.
func (s *eventService) GetEventByID(ctx context.Context, actor domain.Actor, eventID string) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if _, err := s.readableCalendar(ctx, actor, event.CalendarID); err != nil {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	return event, nil
}

// ListEvents retrieves events in a window across the calendars the actor may
// read, or a single readable calendar when one is named.
func (s *eventService) ListEvents(ctx context.Context, actor domain.Actor, params dto.ListEventsParams) ([]domain.Event, error) {
	var calendarIDs []string
	if params.CalendarID != "" {
		if _, err := s.readableCalendar(ctx, actor, params.CalendarID); err != nil {
			return nil, err
		}
		calendarIDs = []string{params.CalendarID}
	} else {
		all, err := s.calendarRepo.ListCalendars(ctx)
		if err != nil {
			return nil, err
		}
		for _, c := range all {
			if c.ReadableBy(actor) {
				calendarIDs = append(calendarIDs, c.CalendarID)
			}
		}
		if len(calendarIDs) == 0 {
			return []domain.Event{}, nil
		}
	}

	from := time.Now().AddDate(-1, 0, 0)
	to := time.Now().AddDate(1, 0, 0)
	if params.From != nil {
		from = *params.From
	}
	if params.To != nil {
		to = *params.To
	}

	return s.eventRepo.ListEventsByCalendars(ctx, calendarIDs, from, to)
}

// UpdateEvent applies partial changes to an event.
func (s *eventService) UpdateEvent(ctx context.Context, actor domain.Actor, eventID string, req dto.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.canMutateEvent(ctx, actor, event)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: cannot modify event %s", apperrors.ErrForbidden, eventID)
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Start != nil {
		event.Start = *req.Start
	}
	if req.End != nil {
		event.End = *req.End
	}
	if req.AllDay != nil {
		event.AllDay = *req.AllDay
	}
	if req.Tags != nil {
		event.Tags = *req.Tags
	}
	if req.RRule != nil {
		event.RRule = *req.RRule
	}
	if !event.End.After(event.Start) {
		return nil, fmt.Errorf("%w: event end must be after start", apperrors.ErrValidation)
	}
	event.Touch(actor.UserID, time.Now())

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		return nil, fmt.Errorf("failed to update event %s: %w", eventID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "event", eventID, nil)

	return event, nil
}

// DeleteEvent removes an event and its reminders.
func (s *eventService) DeleteEvent(ctx context.Context, actor domain.Actor, eventID string) error {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	allowed, err := s.canMutateEvent(ctx, actor, event)
	if err != nil {
		return err
	}
	if !allowed {
		return fmt.Errorf("%w: cannot delete event %s", apperrors.ErrForbidden, eventID)
	}

	if err := s.eventRepo.DeleteEvent(ctx, eventID); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "event", eventID, nil)
	return nil
}
