package services

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CategorySvcFacade manages transaction categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, actor domain.Actor, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeactivateCategory(ctx context.Context, actor domain.Actor, categoryID string) error
}

// AccountSvcFacade manages financial accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, actor domain.Actor, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, actor domain.Actor, accountID string) error
}

// TransactionSvcFacade records and lists money movements, maintaining
// account balances as a side effect of every mutation.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error
}

// SalarySvcFacade derives and replaces "current salary" figures.
type SalarySvcFacade interface {
	// CurrentSalaries returns each owner/coowner user's current salary: the
	// amount of their latest income transaction in their salary categories.
	CurrentSalaries(ctx context.Context, users []domain.User) (map[string]decimal.Decimal, error)

	// ReplaceSalary swaps all of the caller's existing salary transactions
	// for a single one dated the first of the current month, adjusting
	// account balances by the net difference atomically.
	ReplaceSalary(ctx context.Context, actor domain.Actor, req dto.ReplaceSalaryRequest) (*domain.Transaction, error)
}
