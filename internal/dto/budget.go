package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID  string          `json:"categoryID" binding:"required"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required,min=2000"`
	LimitAmount decimal.Decimal `json:"limitAmount" binding:"required"`
}

// UpdateBudgetRequest defines the fields that may change on a budget.
type UpdateBudgetRequest struct {
	LimitAmount *decimal.Decimal `json:"limitAmount"`
	SpentAmount *decimal.Decimal `json:"spentAmount"`
}

// ListBudgetsParams defines query parameters for listing budgets.
type ListBudgetsParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=2000"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID    string          `json:"budgetID"`
	CategoryID  string          `json:"categoryID"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	SpentAmount decimal.Decimal `json:"spentAmount"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToBudgetResponse converts a domain.Budget to BudgetResponse.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:    b.BudgetID,
		CategoryID:  b.CategoryID,
		Month:       b.Month,
		Year:        b.Year,
		LimitAmount: b.LimitAmount,
		SpentAmount: b.SpentAmount,
		CreatedAt:   b.CreatedAt,
	}
}

// ListBudgetsResponse wraps the list of budgets.
type ListBudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}
