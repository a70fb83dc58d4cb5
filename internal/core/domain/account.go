package domain

import "github.com/shopspring/decimal"

// AccountType is the kind of money container an account represents.
type AccountType string

const (
	AccountBank AccountType = "bank"
	AccountCard AccountType = "card"
	AccountCash AccountType = "cash"
)

// Account is a financial account with a maintained running balance.
// Invariant: CurrentBalance equals OpeningBalance plus the signed sum of the
// effects of all extant transactions touching this account.
type Account struct {
	AccountID      string          `json:"accountID"`
	Name           string          `json:"name"`
	Type           AccountType     `json:"type"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
