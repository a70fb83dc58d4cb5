package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType declares how a transaction moves money. The balance effect
// of a transaction is derived from this field alone, never from the category
// it happens to reference.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// Transaction is a single money movement. Transfers carry a destination
// account and no category; income/expense carry a category and no destination.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	Type          TransactionType `json:"type"`
	AccountID     string          `json:"accountID"`
	ToAccountID   string          `json:"toAccountID,omitempty"` // transfers only
	CategoryID    string          `json:"categoryID,omitempty"`  // absent for transfers
	Amount        decimal.Decimal `json:"amount"`                // always positive
	Description   string          `json:"description,omitempty"`
	Merchant      string          `json:"merchant,omitempty"`
	Date          time.Time       `json:"date"` // day precision
	IsRecurring   bool            `json:"isRecurring"`
	Notes         string          `json:"notes,omitempty"`
	AuditFields
}

// Validate checks the type-specific field constraints.
func (t Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive")
	}
	switch t.Type {
	case TransactionTransfer:
		if t.ToAccountID == "" {
			return fmt.Errorf("transfer requires a destination account")
		}
		if t.ToAccountID == t.AccountID {
			return fmt.Errorf("transfer source and destination must differ")
		}
	case TransactionIncome, TransactionExpense:
		if t.CategoryID == "" {
			return fmt.Errorf("%s transaction requires a category", t.Type)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// BalanceEffects returns the signed balance deltas this transaction applies,
// keyed by account ID. Income adds to the account, expense subtracts, a
// transfer subtracts from the source and adds to the destination.
func (t Transaction) BalanceEffects() (map[string]decimal.Decimal, error) {
	effects := make(map[string]decimal.Decimal, 2)
	switch t.Type {
	case TransactionIncome:
		effects[t.AccountID] = t.Amount
	case TransactionExpense:
		effects[t.AccountID] = t.Amount.Neg()
	case TransactionTransfer:
		if t.ToAccountID == "" {
			return nil, fmt.Errorf("transfer %s has no destination account", t.TransactionID)
		}
		effects[t.AccountID] = t.Amount.Neg()
		effects[t.ToAccountID] = t.Amount
	default:
		return nil, fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return effects, nil
}

// ReversalEffects returns the exact negation of BalanceEffects. Reversing a
// stored transaction must use this, not a re-derivation from current category
// state, so balances cannot drift if a category was retyped after the fact.
func (t Transaction) ReversalEffects() (map[string]decimal.Decimal, error) {
	effects, err := t.BalanceEffects()
	if err != nil {
		return nil, err
	}
	for id, delta := range effects {
		effects[id] = delta.Neg()
	}
	return effects, nil
}

// MergeEffects folds b into a, summing deltas per account.
func MergeEffects(a, b map[string]decimal.Decimal) map[string]decimal.Decimal {
	if a == nil {
		a = make(map[string]decimal.Decimal, len(b))
	}
	for id, delta := range b {
		if cur, ok := a[id]; ok {
			a[id] = cur.Add(delta)
		} else {
			a[id] = delta
		}
	}
	return a
}
