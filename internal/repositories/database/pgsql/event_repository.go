package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	"github.com/famstack/family_budget_app/internal/models"
	"github.com/famstack/family_budget_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEventRepository struct {
	BaseRepository
}

// newPgxEventRepository creates a new repository for event data.
func newPgxEventRepository(pool *pgxpool.Pool) *PgxEventRepository {
	return &PgxEventRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxEventRepository implements portsrepo.EventRepositoryFacade
var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

const eventColumns = `event_id, calendar_id, title, notes, location, start_time, end_time, all_day, tags, rrule, source_type, source_id, created_at, created_by, last_updated_at, last_updated_by`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var m models.Event
	var sourceType, sourceID sql.NullString
	err := row.Scan(
		&m.EventID,
		&m.CalendarID,
		&m.Title,
		&m.Notes,
		&m.Location,
		&m.Start,
		&m.End,
		&m.AllDay,
		&m.Tags,
		&m.RRule,
		&sourceType,
		&sourceID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if sourceType.Valid {
		m.SourceType = sourceType.String
	}
	if sourceID.Valid {
		m.SourceID = sourceID.String
	}
	return &m, nil
}

func insertEventTx(ctx context.Context, tx pgx.Tx, m models.Event) error {
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.EventID,
		m.CalendarID,
		m.Title,
		m.Notes,
		m.Location,
		m.Start,
		m.End,
		m.AllDay,
		m.Tags,
		m.RRule,
		nullableString(m.SourceType),
		nullableString(m.SourceID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: event with ID %s already exists", apperrors.ErrDuplicate, m.EventID)
		}
		return fmt.Errorf("failed to insert event %s: %w", m.EventID, err)
	}
	return nil
}

// SaveEvent persists a new event.
func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertEventTx(ctx, tx, mapping.ToModelEvent(event)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// SaveEventWithReminder persists an event and its reminder in one store
// transaction. Used by bill event generation, which must never produce an
// event without its reminder.
func (r *PgxEventRepository) SaveEventWithReminder(ctx context.Context, event domain.Event, reminder domain.Reminder) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := insertEventTx(ctx, tx, mapping.ToModelEvent(event)); err != nil {
		return err
	}
	if err := insertReminderTx(ctx, tx, mapping.ToModelReminder(reminder)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindEventByID retrieves an event by its ID.
func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}

	d := mapping.ToDomainEvent(*m)
	return &d, nil
}

// FindEventBySource retrieves the event generated from the given source.
func (r *PgxEventRepository) FindEventBySource(ctx context.Context, sourceType, sourceID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE source_type = $1 AND source_id = $2 LIMIT 1;`

	m, err := scanEvent(r.Pool.QueryRow(ctx, query, sourceType, sourceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by source %s/%s: %w", sourceType, sourceID, err)
	}

	d := mapping.ToDomainEvent(*m)
	return &d, nil
}

// ListEventsByCalendars retrieves events on the given calendars within [from, to].
func (r *PgxEventRepository) ListEventsByCalendars(ctx context.Context, calendarIDs []string, from, to time.Time) ([]domain.Event, error) {
	if len(calendarIDs) == 0 {
		return []domain.Event{}, nil
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE calendar_id = ANY($1) AND start_time >= $2 AND start_time <= $3
		ORDER BY start_time;
	`
	rows, err := r.Pool.Query(ctx, query, calendarIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by calendars: %w", err)
	}
	defer rows.Close()

	var ms []models.Event
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return mapping.ToDomainEventSlice(ms), nil
}

// UpdateEvent updates an existing event.
func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)

	query := `
		UPDATE events
		SET title = $2, notes = $3, location = $4, start_time = $5, end_time = $6, all_day = $7, tags = $8, rrule = $9, last_updated_at = $10, last_updated_by = $11
		WHERE event_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.EventID,
		m.Title,
		m.Notes,
		m.Location,
		m.Start,
		m.End,
		m.AllDay,
		m.Tags,
		m.RRule,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEvent removes an event; its reminders cascade.
func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1;`, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
