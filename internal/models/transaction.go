package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the storage layer.
type TransactionType string

// Transaction represents a money movement row.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	Type          TransactionType `db:"type"`
	AccountID     string          `db:"account_id"`
	ToAccountID   string          `db:"to_account_id"` // nullable, transfers only
	CategoryID    string          `db:"category_id"`   // nullable for transfers
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	Merchant      string          `db:"merchant"`
	Date          time.Time       `db:"date"`
	IsRecurring   bool            `db:"is_recurring"`
	Notes         string          `db:"notes"`
	AuditFields
}
