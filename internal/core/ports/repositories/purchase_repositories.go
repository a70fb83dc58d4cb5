package repositories

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PurchaseReader defines read operations for planned purchase data.
type PurchaseReader interface {
	// FindPurchaseByID retrieves a planned purchase with its installments.
	FindPurchaseByID(ctx context.Context, purchaseID string) (*domain.PlannedPurchase, error)

	// ListPurchases retrieves all planned purchases with their installments.
	ListPurchases(ctx context.Context) ([]domain.PlannedPurchase, error)
}

// PurchaseWriter defines write operations for planned purchase data.
type PurchaseWriter interface {
	// SavePurchase persists a purchase and its installment rows atomically.
	SavePurchase(ctx context.Context, purchase domain.PlannedPurchase) error

	// MarkInstallmentPaid records an installment payment: it inserts the
	// expense transaction, applies balanceChanges and flags the installment
	// row, all in one store transaction.
	MarkInstallmentPaid(ctx context.Context, purchaseID string, index int, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error

	// DeletePurchase removes a purchase and its installments.
	DeletePurchase(ctx context.Context, purchaseID string) error
}

// PurchaseRepositoryFacade combines all planned-purchase repository interfaces.
type PurchaseRepositoryFacade interface {
	PurchaseReader
	PurchaseWriter
}
