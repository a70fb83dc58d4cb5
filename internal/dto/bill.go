package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to create a bill.
type CreateBillRequest struct {
	Name           string                `json:"name" binding:"required"`
	Provider       string                `json:"provider"`
	CategoryID     string                `json:"categoryID" binding:"required"`
	AccountID      string                `json:"accountID" binding:"required"`
	Recurrence     domain.RecurrenceType `json:"recurrence" binding:"required,oneof=monthly weekly quarterly yearly"`
	DueDay         int                   `json:"dueDay" binding:"required,min=1,max=31"`
	ExpectedAmount decimal.Decimal       `json:"expectedAmount" binding:"required"`
	Autopay        bool                  `json:"autopay"`
}

// UpdateBillRequest defines the fields that may change on a bill.
type UpdateBillRequest struct {
	Name           *string          `json:"name"`
	Provider       *string          `json:"provider"`
	DueDay         *int             `json:"dueDay" binding:"omitempty,min=1,max=31"`
	ExpectedAmount *decimal.Decimal `json:"expectedAmount"`
	Autopay        *bool            `json:"autopay"`
	IsActive       *bool            `json:"isActive"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	BillID         string                `json:"billID"`
	Name           string                `json:"name"`
	Provider       string                `json:"provider,omitempty"`
	CategoryID     string                `json:"categoryID"`
	AccountID      string                `json:"accountID"`
	Recurrence     domain.RecurrenceType `json:"recurrence"`
	DueDay         int                   `json:"dueDay"`
	ExpectedAmount decimal.Decimal       `json:"expectedAmount"`
	Autopay        bool                  `json:"autopay"`
	IsActive       bool                  `json:"isActive"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ToBillResponse converts a domain.Bill to BillResponse.
func ToBillResponse(b *domain.Bill) BillResponse {
	return BillResponse{
		BillID:         b.BillID,
		Name:           b.Name,
		Provider:       b.Provider,
		CategoryID:     b.CategoryID,
		AccountID:      b.AccountID,
		Recurrence:     b.Recurrence,
		DueDay:         b.DueDay,
		ExpectedAmount: b.ExpectedAmount,
		Autopay:        b.Autopay,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
	}
}

// ListBillsResponse wraps the list of bills.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}
