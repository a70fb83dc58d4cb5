package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlannedPurchase is a one-off purchase paid for in installments. Paying an
// installment records an expense transaction against the linked account.
type PlannedPurchase struct {
	PurchaseID       string          `json:"purchaseID"`
	Name             string          `json:"name"`
	CategoryID       string          `json:"categoryID"`
	AccountID        string          `json:"accountID"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	InstallmentCount int             `json:"installmentCount"`
	Installments     []Installment   `json:"installments,omitempty"`
	AuditFields
}

// Installment is one slice of a planned purchase, indexed from zero.
type Installment struct {
	Index         int             `json:"index"`
	Amount        decimal.Decimal `json:"amount"`
	Paid          bool            `json:"paid"`
	PaidAt        *time.Time      `json:"paidAt,omitempty"`
	TransactionID string          `json:"transactionID,omitempty"`
}

// SplitInstallments divides total into n installment amounts that sum exactly
// to total; the remainder cents land on the last installment.
func SplitInstallments(total decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}
	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	amounts := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		amounts[i] = base
		running = running.Add(base)
	}
	amounts[n-1] = total.Sub(running)
	return amounts
}
