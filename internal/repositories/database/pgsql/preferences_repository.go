package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	"github.com/famstack/family_budget_app/internal/models"
	"github.com/famstack/family_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPreferencesRepository struct {
	pool *pgxpool.Pool
}

// newPgxPreferencesRepository creates a new repository for user preferences.
func newPgxPreferencesRepository(pool *pgxpool.Pool) portsrepo.PreferencesRepositoryFacade {
	return &PgxPreferencesRepository{pool: pool}
}

// Ensure PgxPreferencesRepository implements portsrepo.PreferencesRepositoryFacade
var _ portsrepo.PreferencesRepositoryFacade = (*PgxPreferencesRepository)(nil)

const preferencesColumns = `preferences_id, user_id, timezone, quiet_hours_start, quiet_hours_end, default_reminder_minutes, email_notifications, created_at, created_by, last_updated_at, last_updated_by`

// FindPreferencesByUserID retrieves a user's preferences.
func (r *PgxPreferencesRepository) FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	query := `SELECT ` + preferencesColumns + ` FROM user_preferences WHERE user_id = $1;`

	var m models.UserPreferences
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&m.PreferencesID,
		&m.UserID,
		&m.Timezone,
		&m.QuietHoursStart,
		&m.QuietHoursEnd,
		&m.DefaultReminderMinutes,
		&m.EmailNotifications,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences for user %s: %w", userID, err)
	}

	d := mapping.ToDomainPreferences(m)
	return &d, nil
}

// UpsertPreferences inserts or replaces a user's preferences. The user_id
// unique constraint makes the lazy-create path race safe.
func (r *PgxPreferencesRepository) UpsertPreferences(ctx context.Context, prefs domain.UserPreferences) error {
	m := mapping.ToModelPreferences(prefs)

	query := `
		INSERT INTO user_preferences (` + preferencesColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE
		SET timezone = EXCLUDED.timezone,
		    quiet_hours_start = EXCLUDED.quiet_hours_start,
		    quiet_hours_end = EXCLUDED.quiet_hours_end,
		    default_reminder_minutes = EXCLUDED.default_reminder_minutes,
		    email_notifications = EXCLUDED.email_notifications,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.pool.Exec(ctx, query,
		m.PreferencesID,
		m.UserID,
		m.Timezone,
		m.QuietHoursStart,
		m.QuietHoursEnd,
		m.DefaultReminderMinutes,
		m.EmailNotifications,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert preferences for user %s: %w", m.UserID, err)
	}
	return nil
}
