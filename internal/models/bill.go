package models

import "github.com/shopspring/decimal"

// RecurrenceType mirrors domain.RecurrenceType at the storage layer.
type RecurrenceType string

// Bill represents a recurring bill definition row.
type Bill struct {
	BillID         string          `db:"bill_id"`
	Name           string          `db:"name"`
	Provider       string          `db:"provider"`
	CategoryID     string          `db:"category_id"`
	AccountID      string          `db:"account_id"`
	Recurrence     RecurrenceType  `db:"recurrence"`
	DueDay         int             `db:"due_day"`
	ExpectedAmount decimal.Decimal `db:"expected_amount"`
	Autopay        bool            `db:"autopay"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
