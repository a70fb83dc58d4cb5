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
	"github.com/famstack/family_budget_app/internal/dto"
	"github.com/famstack/family_budget_app/internal/middleware"
)

// Default shared calendar, created lazily on first use.
const (
	defaultHouseholdCalendarName  = "Household Calendar"
	defaultHouseholdCalendarColor = "#DC2626"
)

// calendarService manages calendars and enforces their visibility rules.
type calendarService struct {
	calendarRepo portsrepo.CalendarRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewCalendarService creates a new instance of calendarService.
func NewCalendarService(calendarRepo portsrepo.CalendarRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CalendarSvcFacade {
	return &calendarService{calendarRepo: calendarRepo, auditSvc: auditSvc}
}

var _ portssvc.CalendarSvcFacade = (*calendarService)(nil)

// CreateCalendar creates a calendar. Personal calendars are owned by the
// caller; household calendars have no owner.
func (s *calendarService) CreateCalendar(ctx context.Context, actor domain.Actor, req dto.CreateCalendarRequest) (*domain.Calendar, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot create calendars", apperrors.ErrForbidden)
	}

	now := time.Now()
	calendar := domain.Calendar{
		CalendarID:  uuid.NewString(),
		Name:        req.Name,
		Scope:       req.Scope,
		Color:       req.Color,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}
	if req.Scope == domain.ScopePersonal {
		calendar.OwnerUserID = actor.UserID
	}

	if err := s.calendarRepo.SaveCalendar(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to create calendar: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "calendar", calendar.CalendarID, map[string]any{
		"name":  calendar.Name,
		"scope": string(calendar.Scope),
	})

	return &calendar, nil
}

// GetCalendarByID retrieves a calendar the actor may read.
func (s *calendarService) GetCalendarByID(ctx context.Context, actor domain.Actor, calendarID string) (*domain.Calendar, error) {
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, calendarID)
	if err != nil {
		return nil, err
	}
	if !calendar.ReadableBy(actor) {
		// Hidden calendars are indistinguishable from absent ones.
		return nil, fmt.Errorf("%w: calendar %s", apperrors.ErrNotFound, calendarID)
	}
	return calendar, nil
}

// ListCalendars returns the calendars the actor may read.
func (s *calendarService) ListCalendars(ctx context.Context, actor domain.Actor) ([]domain.Calendar, error) {
	all, err := s.calendarRepo.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}
	readable := make([]domain.Calendar, 0, len(all))
	for _, c := range all {
		if c.ReadableBy(actor) {
			readable = append(readable, c)
		}
	}
	return readable, nil
}

// ReadableCalendarIDs returns the ids of calendars the actor may read.
func (s *calendarService) ReadableCalendarIDs(ctx context.Context, actor domain.Actor) ([]string, error) {
	calendars, err := s.ListCalendars(ctx, actor)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(calendars))
	for i, c := range calendars {
		ids[i] = c.CalendarID
	}
	return ids, nil
}

// DeleteCalendar removes a calendar and its events. The default household
// calendar cannot be deleted.
func (s *calendarService) DeleteCalendar(ctx context.Context, actor domain.Actor, calendarID string) error {
	calendar, err := s.calendarRepo.FindCalendarByID(ctx, calendarID)
	if err != nil {
		return err
	}
	if !calendar.WritableBy(actor) {
		return fmt.Errorf("%w: cannot delete calendar %s", apperrors.ErrForbidden, calendarID)
	}
	if calendar.IsDefault {
		return fmt.Errorf("%w: the default household calendar cannot be deleted", apperrors.ErrValidation)
	}

	if err := s.calendarRepo.DeleteCalendar(ctx, calendarID); err != nil {
		return fmt.Errorf("failed to delete calendar %s: %w", calendarID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "calendar", calendarID, nil)
	return nil
}

// EnsureDefaultHouseholdCalendar upserts the shared household calendar and
// returns it. Idempotent.
func (s *calendarService) EnsureDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error) {
	existing, err := s.calendarRepo.FindDefaultHouseholdCalendar(ctx)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up default household calendar: %w", err)
	}

	now := time.Now()
	calendar := domain.Calendar{
		CalendarID:  uuid.NewString(),
		Name:        defaultHouseholdCalendarName,
		Scope:       domain.ScopeHousehold,
		IsDefault:   true,
		Color:       defaultHouseholdCalendarColor,
		AuditFields: domain.NewAuditFields("system", now),
	}
	if err := s.calendarRepo.SaveCalendar(ctx, calendar); err != nil {
		return nil, fmt.Errorf("failed to create default household calendar: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Created default household calendar", "calendar_id", calendar.CalendarID)
	return &calendar, nil
}
