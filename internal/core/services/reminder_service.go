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

// reminderService manages reminders attached to events. Access follows the
// event's calendar: whoever can see the event can see its reminders, whoever
// can change the event can change them.
type reminderService struct {
	reminderRepo portsrepo.ReminderRepositoryFacade
	eventRepo    portsrepo.EventRepositoryFacade
	calendarRepo portsrepo.CalendarRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewReminderService creates a new instance of reminderService.
func NewReminderService(
	reminderRepo portsrepo.ReminderRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	calendarRepo portsrepo.CalendarRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.ReminderSvcFacade {
	return &reminderService{
		reminderRepo: reminderRepo,
		eventRepo:    eventRepo,
		calendarRepo: calendarRepo,
		auditSvc:     auditSvc,
	}
}

var _ portssvc.ReminderSvcFacade = (*reminderService)(nil)

// eventForActor resolves an event and checks access against its calendar.
func (s *reminderService) eventForActor(ctx context.Context, actor domain.Actor, eventID string, write bool) (*domain.Event, error) {
	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, event.CalendarID)
	if err != nil {
		return nil, err
	}
	if !calendar.ReadableBy(actor) {
		return nil, fmt.Errorf("%w: event %s", apperrors.ErrNotFound, eventID)
	}
	if write && !(calendar.WritableBy(actor) || (event.CreatedBy == actor.UserID && actor.CanMutate())) {
		return nil, fmt.Errorf("%w: cannot modify reminders on event %s", apperrors.ErrForbidden, eventID)
	}
	return event, nil
}

// CreateReminder attaches a reminder to an event.
func (s *reminderService) CreateReminder(ctx context.Context, actor domain.Actor, req dto.CreateReminderRequest) (*domain.Reminder, error) {
	event, err := s.eventForActor(ctx, actor, req.EventID, true)
	if err != nil {
		return nil, err
	}

	channel := req.Channel
	if channel == "" {
		channel = domain.ChannelInApp
	}

	now := time.Now()
	reminder := domain.Reminder{
		ReminderID:    uuid.NewString(),
		EventID:       event.EventID,
		OffsetMinutes: req.OffsetMinutes,
		Channel:       channel,
		Status:        domain.ReminderScheduled,
		Message:       req.Message,
		TriggerTime:   domain.TriggerTimeFor(event.Start, req.OffsetMinutes),
		AuditFields:   domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.reminderRepo.SaveReminder(ctx, reminder); err != nil {
		return nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "reminder", reminder.ReminderID, map[string]any{
		"event_id": event.EventID,
		"offset":   req.OffsetMinutes,
	})

	return &reminder, nil
}

// ListRemindersByEvent retrieves the reminders on an event the actor may read.
func (s *reminderService) ListRemindersByEvent(ctx context.Context, actor domain.Actor, eventID string) ([]domain.Reminder, error) {
	if _, err := s.eventForActor(ctx, actor, eventID, false); err != nil {
		return nil, err
	}
	return s.reminderRepo.ListRemindersByEvent(ctx, eventID)
}

// UpdateReminder applies partial changes to a reminder. Changing the offset
// recomputes the trigger time from the event's current start.
func (s *reminderService) UpdateReminder(ctx context.Context, actor domain.Actor, reminderID string, req dto.UpdateReminderRequest) (*domain.Reminder, error) {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventForActor(ctx, actor, reminder.EventID, true)
	if err != nil {
		return nil, err
	}

	if req.OffsetMinutes != nil {
		reminder.OffsetMinutes = *req.OffsetMinutes
		reminder.TriggerTime = domain.TriggerTimeFor(event.Start, *req.OffsetMinutes)
	}
	if req.Status != nil {
		reminder.Status = *req.Status
		if *req.Status == domain.ReminderSnoozed {
			if req.SnoozedUntil == nil {
				return nil, fmt.Errorf("%w: snoozing requires snoozedUntil", apperrors.ErrValidation)
			}
			reminder.SnoozedUntil = req.SnoozedUntil
		}
	}
	reminder.Touch(actor.UserID, time.Now())

	if err := s.reminderRepo.UpdateReminder(ctx, *reminder); err != nil {
		return nil, fmt.Errorf("failed to update reminder %s: %w", reminderID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "reminder", reminderID, nil)

	return reminder, nil
}

// DeleteReminder removes a reminder.
func (s *reminderService) DeleteReminder(ctx context.Context, actor domain.Actor, reminderID string) error {
	reminder, err := s.reminderRepo.FindReminderByID(ctx, reminderID)
	if err != nil {
		return err
	}
	if _, err := s.eventForActor(ctx, actor, reminder.EventID, true); err != nil {
		return err
	}

	if err := s.reminderRepo.DeleteReminder(ctx, reminderID); err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "reminder", reminderID, nil)
	return nil
}
