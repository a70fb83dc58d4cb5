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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReminderRepository struct {
	pool *pgxpool.Pool
}

// newPgxReminderRepository creates a new repository for reminder data.
func newPgxReminderRepository(pool *pgxpool.Pool) portsrepo.ReminderRepositoryFacade {
	return &PgxReminderRepository{pool: pool}
}

// Ensure PgxReminderRepository implements portsrepo.ReminderRepositoryFacade
var _ portsrepo.ReminderRepositoryFacade = (*PgxReminderRepository)(nil)

const reminderColumns = `reminder_id, event_id, offset_minutes, channel, status, message, trigger_time, sent_at, snoozed_until, created_at, created_by, last_updated_at, last_updated_by`

func scanReminder(row pgx.Row) (*models.Reminder, error) {
	var m models.Reminder
	err := row.Scan(
		&m.ReminderID,
		&m.EventID,
		&m.OffsetMinutes,
		&m.Channel,
		&m.Status,
		&m.Message,
		&m.TriggerTime,
		&m.SentAt,
		&m.SnoozedUntil,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func insertReminderTx(ctx context.Context, tx pgx.Tx, m models.Reminder) error {
	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, query,
		m.ReminderID,
		m.EventID,
		m.OffsetMinutes,
		m.Channel,
		m.Status,
		m.Message,
		m.TriggerTime,
		m.SentAt,
		m.SnoozedUntil,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reminder with ID %s already exists", apperrors.ErrDuplicate, m.ReminderID)
		}
		return fmt.Errorf("failed to insert reminder %s: %w", m.ReminderID, err)
	}
	return nil
}

// SaveReminder persists a new reminder.
func (r *PgxReminderRepository) SaveReminder(ctx context.Context, reminder domain.Reminder) error {
	m := mapping.ToModelReminder(reminder)

	query := `
		INSERT INTO reminders (` + reminderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ReminderID,
		m.EventID,
		m.OffsetMinutes,
		m.Channel,
		m.Status,
		m.Message,
		m.TriggerTime,
		m.SentAt,
		m.SnoozedUntil,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: reminder with ID %s already exists", apperrors.ErrDuplicate, m.ReminderID)
		}
		return fmt.Errorf("failed to save reminder %s: %w", m.ReminderID, err)
	}
	return nil
}

// FindReminderByID retrieves a reminder by its ID.
func (r *PgxReminderRepository) FindReminderByID(ctx context.Context, reminderID string) (*domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE reminder_id = $1;`

	m, err := scanReminder(r.pool.QueryRow(ctx, query, reminderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reminder by ID %s: %w", reminderID, err)
	}

	d := mapping.ToDomainReminder(*m)
	return &d, nil
}

// ListRemindersByEvent retrieves all reminders attached to an event.
func (r *PgxReminderRepository) ListRemindersByEvent(ctx context.Context, eventID string) ([]domain.Reminder, error) {
	query := `SELECT ` + reminderColumns + ` FROM reminders WHERE event_id = $1 ORDER BY trigger_time;`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders for event %s: %w", eventID, err)
	}
	defer rows.Close()

	var ms []models.Reminder
	for rows.Next() {
		m, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reminder row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminder rows: %w", err)
	}

	return mapping.ToDomainReminderSlice(ms), nil
}

// UpdateReminder updates an existing reminder.
func (r *PgxReminderRepository) UpdateReminder(ctx context.Context, reminder domain.Reminder) error {
	m := mapping.ToModelReminder(reminder)

	query := `
		UPDATE reminders
		SET offset_minutes = $2, channel = $3, status = $4, message = $5, trigger_time = $6, sent_at = $7, snoozed_until = $8, last_updated_at = $9, last_updated_by = $10
		WHERE reminder_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.ReminderID,
		m.OffsetMinutes,
		m.Channel,
		m.Status,
		m.Message,
		m.TriggerTime,
		m.SentAt,
		m.SnoozedUntil,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder %s: %w", m.ReminderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteReminder removes a reminder.
func (r *PgxReminderRepository) DeleteReminder(ctx context.Context, reminderID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM reminders WHERE reminder_id = $1;`, reminderID)
	if err != nil {
		return fmt.Errorf("failed to delete reminder %s: %w", reminderID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
