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
	"github.com/shopspring/decimal"
)

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for planned purchase data.
func newPgxPurchaseRepository(pool *pgxpool.Pool) *PgxPurchaseRepository {
	return &PgxPurchaseRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPurchaseRepository implements portsrepo.PurchaseRepositoryFacade
var _ portsrepo.PurchaseRepositoryFacade = (*PgxPurchaseRepository)(nil)

const purchaseColumns = `purchase_id, name, category_id, account_id, total_amount, installment_count, created_at, created_by, last_updated_at, last_updated_by`
const installmentColumns = `purchase_id, idx, amount, paid, paid_at, transaction_id`

func scanPurchase(row pgx.Row) (*models.PlannedPurchase, error) {
	var m models.PlannedPurchase
	err := row.Scan(
		&m.PurchaseID,
		&m.Name,
		&m.CategoryID,
		&m.AccountID,
		&m.TotalAmount,
		&m.InstallmentCount,
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

func scanInstallment(row pgx.Row) (*models.Installment, error) {
	var m models.Installment
	var transactionID sql.NullString
	err := row.Scan(
		&m.PurchaseID,
		&m.Idx,
		&m.Amount,
		&m.Paid,
		&m.PaidAt,
		&transactionID,
	)
	if err != nil {
		return nil, err
	}
	if transactionID.Valid {
		m.TransactionID = transactionID.String
	}
	return &m, nil
}

// SavePurchase persists a purchase and its installment rows atomically.
func (r *PgxPurchaseRepository) SavePurchase(ctx context.Context, purchase domain.PlannedPurchase) error {
	m := mapping.ToModelPurchase(purchase)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO planned_purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.PurchaseID,
		m.Name,
		m.CategoryID,
		m.AccountID,
		m.TotalAmount,
		m.InstallmentCount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: purchase with ID %s already exists", apperrors.ErrDuplicate, m.PurchaseID)
		}
		return fmt.Errorf("failed to save purchase %s: %w", m.PurchaseID, err)
	}

	batch := &pgx.Batch{}
	insQuery := `
		INSERT INTO purchase_installments (` + installmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, ins := range purchase.Installments {
		im := mapping.ToModelInstallment(purchase.PurchaseID, ins)
		batch.Queue(insQuery, im.PurchaseID, im.Idx, im.Amount, im.Paid, im.PaidAt, nullableString(im.TransactionID))
	}
	if batch.Len() > 0 {
		br := tx.SendBatch(ctx, batch)
		var batchErr error
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil && batchErr == nil {
				batchErr = fmt.Errorf("failed to insert installment %d of purchase %s: %w", i, m.PurchaseID, err)
			}
		}
		if err := br.Close(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to close installment insert batch: %w", err)
		}
		if batchErr != nil {
			return batchErr
		}
	}

	return r.Commit(ctx, tx)
}

// FindPurchaseByID retrieves a planned purchase with its installments.
func (r *PgxPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PlannedPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM planned_purchases WHERE purchase_id = $1;`

	m, err := scanPurchase(r.Pool.QueryRow(ctx, query, purchaseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find purchase by ID %s: %w", purchaseID, err)
	}

	installments, err := r.listInstallments(ctx, purchaseID)
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainPurchase(*m, installments)
	return &d, nil
}

// ListPurchases retrieves all planned purchases with their installments.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context) ([]domain.PlannedPurchase, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+purchaseColumns+` FROM planned_purchases ORDER BY created_at DESC;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	var ms []models.PlannedPurchase
	for rows.Next() {
		m, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}

	ds := make([]domain.PlannedPurchase, len(ms))
	for i, m := range ms {
		installments, err := r.listInstallments(ctx, m.PurchaseID)
		if err != nil {
			return nil, err
		}
		ds[i] = mapping.ToDomainPurchase(m, installments)
	}
	return ds, nil
}

func (r *PgxPurchaseRepository) listInstallments(ctx context.Context, purchaseID string) ([]models.Installment, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+installmentColumns+` FROM purchase_installments WHERE purchase_id = $1 ORDER BY idx;`, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query installments for purchase %s: %w", purchaseID, err)
	}
	defer rows.Close()

	var ms []models.Installment
	for rows.Next() {
		m, err := scanInstallment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan installment row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating installment rows: %w", err)
	}
	return ms, nil
}

// MarkInstallmentPaid records an installment payment in one store
// transaction: it inserts the expense transaction, applies the balance
// changes and flags the installment row. The row is guarded by paid = FALSE
// so a concurrent double pay loses the race instead of paying twice.
func (r *PgxPurchaseRepository) MarkInstallmentPaid(ctx context.Context, purchaseID string, index int, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	m := mapping.ToModelTransaction(txn)
	if err := insertTransactionTx(ctx, tx, m); err != nil {
		return err
	}

	now := time.Now()
	cmdTag, err := tx.Exec(ctx, `
		UPDATE purchase_installments
		SET paid = TRUE, paid_at = $3, transaction_id = $4
		WHERE purchase_id = $1 AND idx = $2 AND paid = FALSE;
	`, purchaseID, index, now, txn.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to mark installment %d of purchase %s paid: %w", index, purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: installment %d of purchase %s not found or already paid", apperrors.ErrValidation, index, purchaseID)
	}

	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, m.CreatedBy, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeletePurchase removes a purchase; its installments cascade.
func (r *PgxPurchaseRepository) DeletePurchase(ctx context.Context, purchaseID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM planned_purchases WHERE purchase_id = $1;`, purchaseID)
	if err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
