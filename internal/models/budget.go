package models

import "github.com/shopspring/decimal"

// Budget represents a per-category monthly budget row.
type Budget struct {
	BudgetID    string          `db:"budget_id"`
	CategoryID  string          `db:"category_id"`
	Month       int             `db:"month"`
	Year        int             `db:"year"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	SpentAmount decimal.Decimal `db:"spent_amount"`
	AuditFields
}
