package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/middleware"
)

// billEventDuration is the calendar slot a generated bill event occupies.
const billEventDuration = time.Hour

// scheduleService turns bill definitions into calendar events and builds the
// agenda projection. All due dates are computed in a fixed household
// timezone so the schedule does not shift with the server's locale.
type scheduleService struct {
	billRepo    portsrepo.BillRepositoryFacade
	eventRepo   portsrepo.EventRepositoryFacade
	calendarSvc portssvc.CalendarSvcFacade
	location    *time.Location
}

// NewScheduleService creates a new instance of scheduleService. An unknown
// timezone name falls back to UTC.
func NewScheduleService(
	billRepo portsrepo.BillRepositoryFacade,
	eventRepo portsrepo.EventRepositoryFacade,
	calendarSvc portssvc.CalendarSvcFacade,
	timezone string,
) portssvc.ScheduleSvcFacade {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}
	return &scheduleService{
		billRepo:    billRepo,
		eventRepo:   eventRepo,
		calendarSvc: calendarSvc,
		location:    location,
	}
}

var _ portssvc.ScheduleSvcFacade = (*scheduleService)(nil)

// GenerateBillEvents creates an event plus default reminder on the household
// calendar for every active bill that has none yet. Bills that already have a
// generated event are skipped, so repeated runs are harmless.
func (s *scheduleService) GenerateBillEvents(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	calendar, err := s.calendarSvc.EnsureDefaultHouseholdCalendar(ctx)
	if err != nil {
		return 0, err
	}

	bills, err := s.billRepo.ListBills(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list bills for event generation: %w", err)
	}

	generated := 0
	now := time.Now().In(s.location)
	for _, bill := range bills {
		_, err := s.eventRepo.FindEventBySource(ctx, domain.EventSourceBill, bill.BillID)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return generated, fmt.Errorf("failed to check existing event for bill %s: %w", bill.BillID, err)
		}

		start := domain.NextOccurrence(bill.DueDay, now)
		event := domain.Event{
			EventID:     uuid.NewString(),
			CalendarID:  calendar.CalendarID,
			Title:       fmt.Sprintf("%s Due", bill.Name),
			Notes:       billEventNotes(bill),
			Start:       start,
			End:         start.Add(billEventDuration),
			Tags:        []string{domain.TagBills},
			SourceType:  domain.EventSourceBill,
			SourceID:    bill.BillID,
			AuditFields: domain.NewAuditFields("system", now),
		}
		reminder := domain.Reminder{
			ReminderID:    uuid.NewString(),
			EventID:       event.EventID,
			OffsetMinutes: domain.DefaultBillReminderOffset,
			Channel:       domain.ChannelInApp,
			Status:        domain.ReminderScheduled,
			Message:       fmt.Sprintf("Bill due tomorrow: %s", bill.Name),
			TriggerTime:   domain.TriggerTimeFor(start, domain.DefaultBillReminderOffset),
			AuditFields:   domain.NewAuditFields("system", now),
		}

		if err := s.eventRepo.SaveEventWithReminder(ctx, event, reminder); err != nil {
			return generated, fmt.Errorf("failed to create event for bill %s: %w", bill.BillID, err)
		}
		generated++
	}

	if generated > 0 {
		logger.Info("Generated bill calendar events", "count", generated)
	}
	return generated, nil
}

// billEventNotes renders the informational note on a generated bill event.
func billEventNotes(bill domain.Bill) string {
	notes := fmt.Sprintf("Expected amount: %s", bill.ExpectedAmount.StringFixed(2))
	if bill.Provider != "" {
		notes = fmt.Sprintf("%s\nProvider: %s", notes, bill.Provider)
	}
	if bill.Autopay {
		notes += "\nAutopay is enabled"
	}
	return notes
}

// Agenda returns the actor's readable events and bill projections within
// horizonDays of now.
func (s *scheduleService) Agenda(ctx context.Context, actor domain.Actor, horizonDays int) (*domain.Agenda, error) {
	if horizonDays <= 0 {
		horizonDays = 7
	}

	now := time.Now().In(s.location)
	horizon := now.AddDate(0, 0, horizonDays)

	calendarIDs, err := s.calendarSvc.ReadableCalendarIDs(ctx, actor)
	if err != nil {
		return nil, err
	}

	events := []domain.Event{}
	if len(calendarIDs) > 0 {
		events, err = s.eventRepo.ListEventsByCalendars(ctx, calendarIDs, now, horizon)
		if err != nil {
			return nil, fmt.Errorf("failed to list agenda events: %w", err)
		}
	}

	bills, err := s.billRepo.ListBills(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for agenda: %w", err)
	}
	upcoming := make([]domain.UpcomingBill, 0, len(bills))
	for _, bill := range bills {
		due := domain.NextOccurrence(bill.DueDay, now)
		if due.After(horizon) {
			continue
		}
		upcoming = append(upcoming, domain.UpcomingBill{
			BillID:  bill.BillID,
			Name:    bill.Name,
			Amount:  bill.ExpectedAmount,
			DueDay:  bill.DueDay,
			DueDate: due,
		})
	}

	return &domain.Agenda{Events: events, UpcomingBills: upcoming}, nil
}
