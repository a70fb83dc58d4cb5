package models

import "github.com/shopspring/decimal"

// AccountType mirrors domain.AccountType at the storage layer.
type AccountType string

// Account represents a financial account row with its persisted balance.
type Account struct {
	AccountID      string          `db:"account_id"`
	Name           string          `db:"name"`
	Type           AccountType     `db:"type"`
	Currency       string          `db:"currency"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
