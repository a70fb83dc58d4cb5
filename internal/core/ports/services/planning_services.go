package services

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/dto"
)

// BillSvcFacade manages recurring bill definitions.
type BillSvcFacade interface {
	CreateBill(ctx context.Context, actor domain.Actor, req dto.CreateBillRequest) (*domain.Bill, error)
	GetBillByID(ctx context.Context, billID string) (*domain.Bill, error)
	ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error)
	UpdateBill(ctx context.Context, actor domain.Actor, billID string, req dto.UpdateBillRequest) (*domain.Bill, error)
	DeleteBill(ctx context.Context, actor domain.Actor, billID string) error
}

// BudgetSvcFacade manages per-category monthly budgets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, actor domain.Actor, req dto.CreateBudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, actor domain.Actor, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, actor domain.Actor, budgetID string) error
}

// PurchaseSvcFacade manages planned purchases and installment payments.
type PurchaseSvcFacade interface {
	CreatePurchase(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseRequest) (*domain.PlannedPurchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PlannedPurchase, error)
	ListPurchases(ctx context.Context) ([]domain.PlannedPurchase, error)

	// PayInstallment records the expense transaction for one installment and
	// marks it paid. InvalidInput when the index is out of range or the
	// installment is already paid.
	PayInstallment(ctx context.Context, actor domain.Actor, purchaseID string, index int) (*domain.PlannedPurchase, error)

	DeletePurchase(ctx context.Context, actor domain.Actor, purchaseID string) error
}
