package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date is a calendar day in "2006-01-02" form.
type CreateTransactionRequest struct {
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense transfer"`
	AccountID   string                 `json:"accountID" binding:"required"`
	ToAccountID string                 `json:"toAccountID"`
	CategoryID  string                 `json:"categoryID"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Description string                 `json:"description"`
	Merchant    string                 `json:"merchant"`
	Date        string                 `json:"date" binding:"required"`
	IsRecurring bool                   `json:"isRecurring"`
	Notes       string                 `json:"notes"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	CategoryID string `form:"category_id"`
	AccountID  string `form:"account_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Limit      int    `form:"limit,default=100"`
	Offset     int    `form:"offset,default=0"`
}

// ReplaceSalaryRequest defines the salary update for the calling user.
type ReplaceSalaryRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	AccountID     string                 `json:"accountID"`
	ToAccountID   string                 `json:"toAccountID,omitempty"`
	CategoryID    string                 `json:"categoryID,omitempty"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description,omitempty"`
	Merchant      string                 `json:"merchant,omitempty"`
	Date          string                 `json:"date"`
	IsRecurring   bool                   `json:"isRecurring"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedBy     string                 `json:"createdBy"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Type:          t.Type,
		AccountID:     t.AccountID,
		ToAccountID:   t.ToAccountID,
		CategoryID:    t.CategoryID,
		Amount:        t.Amount,
		Description:   t.Description,
		Merchant:      t.Merchant,
		Date:          t.Date.Format("2006-01-02"),
		IsRecurring:   t.IsRecurring,
		Notes:         t.Notes,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}
}

// SalariesResponse maps user ids to their current salary amounts.
type SalariesResponse struct {
	Salaries map[string]decimal.Decimal `json:"salaries"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToListTransactionsResponse converts domain transactions into the list response.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return ListTransactionsResponse{Transactions: res}
}
