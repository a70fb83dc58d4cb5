package domain

import "github.com/shopspring/decimal"

// Budget is a per-category monthly spending limit. SpentAmount is reporting
// only and is not reconciled against transactions by this system.
type Budget struct {
	BudgetID    string          `json:"budgetID"`
	CategoryID  string          `json:"categoryID"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	LimitAmount decimal.Decimal `json:"limitAmount"`
	SpentAmount decimal.Decimal `json:"spentAmount"`
	AuditFields
}
