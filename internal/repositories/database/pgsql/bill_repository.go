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

type PgxBillRepository struct {
	pool *pgxpool.Pool
}

// newPgxBillRepository creates a new repository for bill data.
func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{pool: pool}
}

// Ensure PgxBillRepository implements portsrepo.BillRepositoryFacade
var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, name, provider, category_id, account_id, recurrence, due_day, expected_amount, autopay, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanBill(row pgx.Row) (*models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.Name,
		&m.Provider,
		&m.CategoryID,
		&m.AccountID,
		&m.Recurrence,
		&m.DueDay,
		&m.ExpectedAmount,
		&m.Autopay,
		&m.IsActive,
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

// SaveBill inserts a new bill.
func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.pool.Exec(ctx, query,
		m.BillID,
		m.Name,
		m.Provider,
		m.CategoryID,
		m.AccountID,
		m.Recurrence,
		m.DueDay,
		m.ExpectedAmount,
		m.Autopay,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: bill with ID %s already exists", apperrors.ErrDuplicate, m.BillID)
		}
		return fmt.Errorf("failed to save bill %s: %w", m.BillID, err)
	}
	return nil
}

// FindBillByID retrieves a bill by its ID.
func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`

	m, err := scanBill(r.pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by ID %s: %w", billID, err)
	}

	d := mapping.ToDomainBill(*m)
	return &d, nil
}

// ListBills retrieves bills ordered by due day.
func (r *PgxBillRepository) ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE is_active = TRUE OR NOT $1 ORDER BY due_day, name;`

	rows, err := r.pool.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	var ms []models.Bill
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", err)
	}

	return mapping.ToDomainBillSlice(ms), nil
}

// UpdateBill updates an existing bill.
func (r *PgxBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)

	query := `
		UPDATE bills
		SET name = $2, provider = $3, category_id = $4, account_id = $5, recurrence = $6, due_day = $7, expected_amount = $8, autopay = $9, is_active = $10, last_updated_at = $11, last_updated_by = $12
		WHERE bill_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.BillID,
		m.Name,
		m.Provider,
		m.CategoryID,
		m.AccountID,
		m.Recurrence,
		m.DueDay,
		m.ExpectedAmount,
		m.Autopay,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update bill %s: %w", m.BillID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteBill removes a bill.
func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
