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
)

// preferencesService manages per-user settings with lazy default creation.
type preferencesService struct {
	preferencesRepo portsrepo.PreferencesRepositoryFacade
}

// NewPreferencesService creates a new instance of preferencesService.
func NewPreferencesService(preferencesRepo portsrepo.PreferencesRepositoryFacade) portssvc.PreferencesSvcFacade {
	return &preferencesService{preferencesRepo: preferencesRepo}
}

var _ portssvc.PreferencesSvcFacade = (*preferencesService)(nil)

// GetPreferences returns the caller's preferences, creating the default row
// on first access.
func (s *preferencesService) GetPreferences(ctx context.Context, actor domain.Actor) (*domain.UserPreferences, error) {
	prefs, err := s.preferencesRepo.FindPreferencesByUserID(ctx, actor.UserID)
	if err == nil {
		return prefs, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up preferences: %w", err)
	}

	defaults := domain.DefaultPreferences(actor.UserID)
	defaults.PreferencesID = uuid.NewString()
	defaults.AuditFields = domain.NewAuditFields(actor.UserID, time.Now())
	if err := s.preferencesRepo.UpsertPreferences(ctx, defaults); err != nil {
		return nil, fmt.Errorf("failed to create default preferences: %w", err)
	}
	return &defaults, nil
}

// UpdatePreferences applies partial changes to the caller's preferences.
func (s *preferencesService) UpdatePreferences(ctx context.Context, actor domain.Actor, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, fmt.Errorf("%w: unknown timezone %q", apperrors.ErrValidation, *req.Timezone)
		}
		prefs.Timezone = *req.Timezone
	}
	if req.QuietHoursStart != nil {
		if _, err := time.Parse("15:04", *req.QuietHoursStart); err != nil {
			return nil, fmt.Errorf("%w: quiet hours start must be HH:MM, got %q", apperrors.ErrValidation, *req.QuietHoursStart)
		}
		prefs.QuietHoursStart = *req.QuietHoursStart
	}
	if req.QuietHoursEnd != nil {
		if _, err := time.Parse("15:04", *req.QuietHoursEnd); err != nil {
			return nil, fmt.Errorf("%w: quiet hours end must be HH:MM, got %q", apperrors.ErrValidation, *req.QuietHoursEnd)
		}
		prefs.QuietHoursEnd = *req.QuietHoursEnd
	}
	if req.DefaultReminderMinutes != nil {
		prefs.DefaultReminderMinutes = *req.DefaultReminderMinutes
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	prefs.Touch(actor.UserID, time.Now())

	if err := s.preferencesRepo.UpsertPreferences(ctx, *prefs); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return prefs, nil
}
