package services

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/dto"
)

// DashboardSvcFacade aggregates the household's financial picture.
type DashboardSvcFacade interface {
	// Stats computes the dashboard payload for the given month/year
	// (defaulting to the current month).
	Stats(ctx context.Context, month, year *int) (*domain.DashboardStats, error)
}

// AuditSvcFacade records and lists the append-only audit trail.
type AuditSvcFacade interface {
	// Record appends an audit entry. Failures are logged, never propagated:
	// an audit miss must not fail the mutation it describes.
	Record(ctx context.Context, userID, action, entity, entityID string, changes map[string]any)

	// ListAuditLogs returns audit entries newest first. Owner only.
	ListAuditLogs(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.AuditLog, error)
}

// PreferencesSvcFacade manages per-user settings.
type PreferencesSvcFacade interface {
	// GetPreferences returns the caller's preferences, creating the default
	// row on first access.
	GetPreferences(ctx context.Context, actor domain.Actor) (*domain.UserPreferences, error)

	// UpdatePreferences applies partial changes to the caller's preferences.
	UpdatePreferences(ctx context.Context, actor domain.Actor, req dto.UpdatePreferencesRequest) (*domain.UserPreferences, error)
}
