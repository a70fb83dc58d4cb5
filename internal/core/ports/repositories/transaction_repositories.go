package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionFilter narrows transaction listings. Nil/zero fields are ignored.
type TransactionFilter struct {
	CategoryID string
	AccountID  string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter, newest date first.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListByCategoryAndCreator retrieves transactions of the given type in a
	// category created by a specific user, latest date first.
	ListByCategoryAndCreator(ctx context.Context, categoryID, createdBy string, txnType domain.TransactionType) ([]domain.Transaction, error)

	// ListRecent retrieves the most recently created transactions.
	ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data. Every
// mutation applies its balance changes in the same store transaction as the
// row change, so balances and rows can never diverge on a crash.
type TransactionWriter interface {
	// SaveTransaction persists a transaction and applies balanceChanges atomically.
	SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeleteTransaction removes a transaction and applies balanceChanges
	// (the reversal of its recorded effects) atomically.
	DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string) error

	// ReplaceTransactions deletes the given transactions and inserts newTxn in
	// one store transaction, applying the net balanceChanges. Used by salary
	// replacement, which must never leave zero or two salary rows behind.
	ReplaceTransactions(ctx context.Context, deleteIDs []string, newTxn domain.Transaction, balanceChanges map[string]decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction management.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
