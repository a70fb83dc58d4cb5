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

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements the facade with tx management
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, type, account_id, to_account_id, category_id, amount, description, merchant, date, is_recurring, notes, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	var toAccountID, categoryID sql.NullString
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.AccountID,
		&toAccountID,
		&categoryID,
		&m.Amount,
		&m.Description,
		&m.Merchant,
		&m.Date,
		&m.IsRecurring,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if toAccountID.Valid {
		m.ToAccountID = toAccountID.String
	}
	if categoryID.Valid {
		m.CategoryID = categoryID.String
	}
	return &m, nil
}

// insertTransactionTx inserts a transaction row inside an open transaction.
// Shared with the purchase repository, whose installment payments also insert
// expense rows.
func insertTransactionTx(ctx context.Context, tx pgx.Tx, m models.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.AccountID,
		nullableString(m.ToAccountID),
		nullableString(m.CategoryID),
		m.Amount,
		m.Description,
		m.Merchant,
		m.Date,
		m.IsRecurring,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransaction persists a transaction and applies its balance changes in
// one store transaction. The touched accounts are locked first so concurrent
// mutations serialize instead of clobbering each other's balances.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}
	if err := insertTransactionTx(ctx, tx, m); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, m.CreatedBy, m.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteTransaction removes a transaction and applies the reversal balance
// changes atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, userID, time.Now()); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// ReplaceTransactions deletes the given transactions and inserts newTxn in one
// store transaction, applying the net balance changes. The swap is all or
// nothing: a crash can never leave both the old rows and the new one, or
// neither.
func (r *PgxTransactionRepository) ReplaceTransactions(ctx context.Context, deleteIDs []string, newTxn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(newTxn)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := lockAccounts(ctx, tx, balanceChanges); err != nil {
		return err
	}

	if len(deleteIDs) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = ANY($1);`, deleteIDs); err != nil {
			return fmt.Errorf("failed to delete replaced transactions: %w", err)
		}
	}
	if err := insertTransactionTx(ctx, tx, m); err != nil {
		return err
	}
	if err := applyBalanceChangesTx(ctx, tx, balanceChanges, m.CreatedBy, m.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// lockAccounts locks the accounts touched by balanceChanges FOR UPDATE.
func lockAccounts(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal) error {
	if len(balanceChanges) == 0 {
		return nil
	}
	accountIDs := make([]string, 0, len(balanceChanges))
	for id := range balanceChanges {
		accountIDs = append(accountIDs, id)
	}

	rows, err := tx.Query(ctx, `SELECT account_id FROM accounts WHERE account_id = ANY($1) FOR UPDATE;`, accountIDs)
	if err != nil {
		return fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	locked := 0
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("failed to scan locked account id: %w", err)
		}
		locked++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating locked account ids: %w", err)
	}
	if locked != len(accountIDs) {
		return fmt.Errorf("%w: could not lock all accounts touched by balance changes", apperrors.ErrNotFound)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// ListTransactions retrieves transactions matching the filter, newest date first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	argN := 1

	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", argN)
		args = append(args, filter.CategoryID)
		argN++
	}
	if filter.AccountID != "" {
		query += fmt.Sprintf(" AND (account_id = $%d OR to_account_id = $%d)", argN, argN)
		args = append(args, filter.AccountID)
		argN++
	}
	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argN)
		args = append(args, *filter.StartDate)
		argN++
	}
	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argN)
		args = append(args, *filter.EndDate)
		argN++
	}

	query += " ORDER BY date DESC, created_at DESC"

	// Limit 0 means the default page size; a negative limit disables paging
	// for callers aggregating a whole period.
	limit := filter.Limit
	if limit == 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d;", argN, argN+1)
		args = append(args, limit, offset)
	} else {
		query += fmt.Sprintf(" OFFSET $%d;", argN)
		args = append(args, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListByCategoryAndCreator retrieves transactions of a type in a category
// created by one user, latest date first then latest created_at. The ordering
// makes the first row the authoritative "current" entry for salary lookups.
func (r *PgxTransactionRepository) ListByCategoryAndCreator(ctx context.Context, categoryID, createdBy string, txnType domain.TransactionType) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE category_id = $1 AND created_by = $2 AND type = $3
		ORDER BY date DESC, created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, categoryID, createdBy, string(txnType))
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by category and creator: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}

// ListRecent retrieves the most recently created transactions.
func (r *PgxTransactionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC LIMIT $1;`

	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return mapping.ToDomainTransactionSlice(ms), nil
}
