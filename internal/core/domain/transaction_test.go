package domain_test

import (
	"testing"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid expense",
			tx: domain.Transaction{
				Type:       domain.TransactionExpense,
				AccountID:  "acc-1",
				CategoryID: "cat-1",
				Amount:     decimal.NewFromInt(50),
			},
			wantErr: false,
		},
		{
			name: "valid transfer",
			tx: domain.Transaction{
				Type:        domain.TransactionTransfer,
				AccountID:   "acc-1",
				ToAccountID: "acc-2",
				Amount:      decimal.NewFromInt(200),
			},
			wantErr: false,
		},
		{
			name: "zero amount",
			tx: domain.Transaction{
				Type:       domain.TransactionIncome,
				AccountID:  "acc-1",
				CategoryID: "cat-1",
				Amount:     decimal.Zero,
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "transfer without destination",
			tx: domain.Transaction{
				Type:      domain.TransactionTransfer,
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "destination account",
		},
		{
			name: "transfer to same account",
			tx: domain.Transaction{
				Type:        domain.TransactionTransfer,
				AccountID:   "acc-1",
				ToAccountID: "acc-1",
				Amount:      decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "must differ",
		},
		{
			name: "income without category",
			tx: domain.Transaction{
				Type:      domain.TransactionIncome,
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "requires a category",
		},
		{
			name: "unknown type",
			tx: domain.Transaction{
				Type:      "refund",
				AccountID: "acc-1",
				Amount:    decimal.NewFromInt(10),
			},
			wantErr: true,
			errMsg:  "unknown transaction type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_BalanceEffects(t *testing.T) {
	amount := decimal.RequireFromString("123.45")

	t.Run("income adds to the account", func(t *testing.T) {
		tx := domain.Transaction{Type: domain.TransactionIncome, AccountID: "acc-1", CategoryID: "cat-1", Amount: amount}
		effects, err := tx.BalanceEffects()
		require.NoError(t, err)
		require.Len(t, effects, 1)
		assert.True(t, effects["acc-1"].Equal(amount))
	})

	t.Run("expense subtracts from the account", func(t *testing.T) {
		tx := domain.Transaction{Type: domain.TransactionExpense, AccountID: "acc-1", CategoryID: "cat-1", Amount: amount}
		effects, err := tx.BalanceEffects()
		require.NoError(t, err)
		require.Len(t, effects, 1)
		assert.True(t, effects["acc-1"].Equal(amount.Neg()))
	})

	t.Run("transfer moves between accounts", func(t *testing.T) {
		tx := domain.Transaction{Type: domain.TransactionTransfer, AccountID: "acc-1", ToAccountID: "acc-2", Amount: amount}
		effects, err := tx.BalanceEffects()
		require.NoError(t, err)
		require.Len(t, effects, 2)
		assert.True(t, effects["acc-1"].Equal(amount.Neg()))
		assert.True(t, effects["acc-2"].Equal(amount))
	})

	t.Run("reversal negates every delta", func(t *testing.T) {
		tx := domain.Transaction{Type: domain.TransactionTransfer, AccountID: "acc-1", ToAccountID: "acc-2", Amount: amount}
		reversal, err := tx.ReversalEffects()
		require.NoError(t, err)
		assert.True(t, reversal["acc-1"].Equal(amount))
		assert.True(t, reversal["acc-2"].Equal(amount.Neg()))
	})
}

func TestMergeEffects(t *testing.T) {
	a := map[string]decimal.Decimal{
		"acc-1": decimal.NewFromInt(100),
		"acc-2": decimal.NewFromInt(-40),
	}
	b := map[string]decimal.Decimal{
		"acc-2": decimal.NewFromInt(40),
		"acc-3": decimal.NewFromInt(7),
	}

	merged := domain.MergeEffects(a, b)

	assert.True(t, merged["acc-1"].Equal(decimal.NewFromInt(100)))
	assert.True(t, merged["acc-2"].IsZero())
	assert.True(t, merged["acc-3"].Equal(decimal.NewFromInt(7)))

	t.Run("nil receiver starts a fresh map", func(t *testing.T) {
		merged := domain.MergeEffects(nil, b)
		assert.True(t, merged["acc-3"].Equal(decimal.NewFromInt(7)))
	})
}
