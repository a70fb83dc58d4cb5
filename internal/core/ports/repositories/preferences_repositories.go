package repositories

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// PreferencesRepositoryFacade defines storage for per-user preferences.
type PreferencesRepositoryFacade interface {
	// FindPreferencesByUserID retrieves a user's preferences.
	FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error)

	// UpsertPreferences inserts or replaces a user's preferences. Used both
	// for lazy creation on first read and for explicit updates.
	UpsertPreferences(ctx context.Context, prefs domain.UserPreferences) error
}
