package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregated view served to the dashboard.
//
// TotalIncome is the sum of the household's current salaries, not the period
// sum of income transactions: a salary change applies to "this month's"
// figure immediately, without back-dating history.
type DashboardStats struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	MonthlySurplus     decimal.Decimal            `json:"monthlySurplus"`
	SavingsRate        decimal.Decimal            `json:"savingsRate"` // percent, 2dp
	CurrentSalaries    map[string]decimal.Decimal `json:"currentSalaries"`
	UpcomingBills      []UpcomingBill             `json:"upcomingBills"`
	CategoryBreakdown  map[string]decimal.Decimal `json:"categoryBreakdown"`
	RecentTransactions []Transaction              `json:"recentTransactions"`
}

// UpcomingBill is a bill projected onto its next due date.
type UpcomingBill struct {
	BillID  string          `json:"billID"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDay  int             `json:"dueDay"`
	DueDate time.Time       `json:"dueDate"`
}

// Agenda is the read-only projection of what is coming up within a horizon:
// readable calendar events plus bill due-date projections.
type Agenda struct {
	Events        []Event        `json:"events"`
	UpcomingBills []UpcomingBill `json:"upcomingBills"`
}
