package repositories

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// BillReader defines read operations for bill data.
type BillReader interface {
	// FindBillByID retrieves a bill by its unique identifier.
	FindBillByID(ctx context.Context, billID string) (*domain.Bill, error)

	// ListBills retrieves bills; activeOnly restricts to active ones.
	ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error)
}

// BillWriter defines write operations for bill data.
type BillWriter interface {
	// SaveBill persists a new bill.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBill updates an existing bill's details.
	UpdateBill(ctx context.Context, bill domain.Bill) error

	// DeleteBill removes a bill.
	DeleteBill(ctx context.Context, billID string) error
}

// BillRepositoryFacade combines all bill-related repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
