package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedPurchase represents a planned purchase row. Installments live in
// their own table keyed by (purchase_id, idx).
type PlannedPurchase struct {
	PurchaseID       string          `db:"purchase_id"`
	Name             string          `db:"name"`
	CategoryID       string          `db:"category_id"`
	AccountID        string          `db:"account_id"`
	TotalAmount      decimal.Decimal `db:"total_amount"`
	InstallmentCount int             `db:"installment_count"`
	AuditFields
}

// Installment represents one installment row of a planned purchase.
type Installment struct {
	PurchaseID    string          `db:"purchase_id"`
	Idx           int             `db:"idx"`
	Amount        decimal.Decimal `db:"amount"`
	Paid          bool            `db:"paid"`
	PaidAt        *time.Time      `db:"paid_at"`
	TransactionID string          `db:"transaction_id"` // nullable
}
