package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	"github.com/famstack/family_budget_app/internal/models"
	"github.com/famstack/family_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCalendarRepository struct {
	pool *pgxpool.Pool
}

// newPgxCalendarRepository creates a new repository for calendar data.
func newPgxCalendarRepository(pool *pgxpool.Pool) portsrepo.CalendarRepositoryFacade {
	return &PgxCalendarRepository{pool: pool}
}

// Ensure PgxCalendarRepository implements portsrepo.CalendarRepositoryFacade
var _ portsrepo.CalendarRepositoryFacade = (*PgxCalendarRepository)(nil)

const calendarColumns = `calendar_id, name, scope, owner_user_id, is_default, color, created_at, created_by, last_updated_at, last_updated_by`

func scanCalendar(row pgx.Row) (*models.Calendar, error) {
	var m models.Calendar
	var ownerUserID sql.NullString
	err := row.Scan(
		&m.CalendarID,
		&m.Name,
		&m.Scope,
		&ownerUserID,
		&m.IsDefault,
		&m.Color,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if ownerUserID.Valid {
		m.OwnerUserID = ownerUserID.String
	}
	return &m, nil
}

// SaveCalendar inserts a new calendar.
func (r *PgxCalendarRepository) SaveCalendar(ctx context.Context, calendar domain.Calendar) error {
	m := mapping.ToModelCalendar(calendar)

	query := `
		INSERT INTO calendars (` + calendarColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CalendarID,
		m.Name,
		m.Scope,
		nullableString(m.OwnerUserID),
		m.IsDefault,
		m.Color,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: calendar with ID %s already exists", apperrors.ErrDuplicate, m.CalendarID)
		}
		return fmt.Errorf("failed to save calendar %s: %w", m.CalendarID, err)
	}
	return nil
}

// FindCalendarByID retrieves a calendar by its ID.
func (r *PgxCalendarRepository) FindCalendarByID(ctx context.Context, calendarID string) (*domain.Calendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendars WHERE calendar_id = $1;`

	m, err := scanCalendar(r.pool.QueryRow(ctx, query, calendarID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find calendar by ID %s: %w", calendarID, err)
	}

	d := mapping.ToDomainCalendar(*m)
	return &d, nil
}

// ListCalendars retrieves all calendars, household ones first.
func (r *PgxCalendarRepository) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendars ORDER BY scope, name;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query calendars: %w", err)
	}
	defer rows.Close()

	var ms []models.Calendar
	for rows.Next() {
		m, err := scanCalendar(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan calendar row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calendar rows: %w", err)
	}

	return mapping.ToDomainCalendarSlice(ms), nil
}

// FindDefaultHouseholdCalendar retrieves the default household calendar.
func (r *PgxCalendarRepository) FindDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error) {
	query := `SELECT ` + calendarColumns + ` FROM calendars WHERE scope = 'household' AND is_default = TRUE LIMIT 1;`

	m, err := scanCalendar(r.pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find default household calendar: %w", err)
	}

	d := mapping.ToDomainCalendar(*m)
	return &d, nil
}

// UpdateCalendar updates an existing calendar.
func (r *PgxCalendarRepository) UpdateCalendar(ctx context.Context, calendar domain.Calendar) error {
	m := mapping.ToModelCalendar(calendar)

	query := `
		UPDATE calendars
		SET name = $2, color = $3, is_default = $4, last_updated_at = $5, last_updated_by = $6
		WHERE calendar_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.CalendarID,
		m.Name,
		m.Color,
		m.IsDefault,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update calendar %s: %w", m.CalendarID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCalendar removes a calendar; its events and their reminders cascade.
func (r *PgxCalendarRepository) DeleteCalendar(ctx context.Context, calendarID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM calendars WHERE calendar_id = $1;`, calendarID)
	if err != nil {
		return fmt.Errorf("failed to delete calendar %s: %w", calendarID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
