package domain_test

import (
	"testing"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitInstallments(t *testing.T) {
	tests := []struct {
		name  string
		total string
		n     int
		want  []string
	}{
		{name: "even split", total: "300.00", n: 3, want: []string{"100", "100", "100"}},
		{name: "remainder lands on last", total: "100.00", n: 3, want: []string{"33.33", "33.33", "33.34"}},
		{name: "single installment", total: "59.99", n: 1, want: []string{"59.99"}},
		{name: "sub-cent total", total: "0.05", n: 4, want: []string{"0.01", "0.01", "0.01", "0.02"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			amounts := domain.SplitInstallments(total, tt.n)
			require.Len(t, amounts, tt.n)

			sum := decimal.Zero
			for i, a := range amounts {
				assert.True(t, a.Equal(decimal.RequireFromString(tt.want[i])), "installment %d: want %s, got %s", i, tt.want[i], a)
				sum = sum.Add(a)
			}
			assert.True(t, sum.Equal(total), "installments must sum exactly to the total")
		})
	}

	t.Run("non-positive count yields nil", func(t *testing.T) {
		assert.Nil(t, domain.SplitInstallments(decimal.NewFromInt(10), 0))
		assert.Nil(t, domain.SplitInstallments(decimal.NewFromInt(10), -2))
	})
}
