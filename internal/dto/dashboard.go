package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DashboardParams defines query parameters for dashboard stats.
type DashboardParams struct {
	Month *int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  *int `form:"year" binding:"omitempty,min=2000"`
}

// UpcomingBillResponse is a bill projected onto its next due date.
type UpcomingBillResponse struct {
	BillID  string          `json:"billID"`
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDay  int             `json:"dueDay"`
	DueDate time.Time       `json:"dueDate"`
}

// DashboardStatsResponse is the aggregated dashboard payload.
type DashboardStatsResponse struct {
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	MonthlySurplus     decimal.Decimal            `json:"monthlySurplus"`
	SavingsRate        decimal.Decimal            `json:"savingsRate"`
	CurrentSalaries    map[string]decimal.Decimal `json:"currentSalaries"`
	UpcomingBills      []UpcomingBillResponse     `json:"upcomingBills"`
	CategoryBreakdown  map[string]decimal.Decimal `json:"categoryBreakdown"`
	RecentTransactions []TransactionResponse      `json:"recentTransactions"`
}

// ToDashboardStatsResponse converts domain.DashboardStats to the response DTO.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	bills := make([]UpcomingBillResponse, len(s.UpcomingBills))
	for i, b := range s.UpcomingBills {
		bills[i] = UpcomingBillResponse{
			BillID:  b.BillID,
			Name:    b.Name,
			Amount:  b.Amount,
			DueDay:  b.DueDay,
			DueDate: b.DueDate,
		}
	}
	recent := make([]TransactionResponse, len(s.RecentTransactions))
	for i := range s.RecentTransactions {
		recent[i] = ToTransactionResponse(&s.RecentTransactions[i])
	}
	return DashboardStatsResponse{
		TotalIncome:        s.TotalIncome,
		TotalExpenses:      s.TotalExpenses,
		MonthlySurplus:     s.MonthlySurplus,
		SavingsRate:        s.SavingsRate,
		CurrentSalaries:    s.CurrentSalaries,
		UpcomingBills:      bills,
		CategoryBreakdown:  s.CategoryBreakdown,
		RecentTransactions: recent,
	}
}

// AgendaResponse is the upcoming-items projection for a horizon of days.
type AgendaResponse struct {
	Events        []EventResponse        `json:"events"`
	UpcomingBills []UpcomingBillResponse `json:"upcomingBills"`
}

// ToAgendaResponse converts a domain.Agenda to AgendaResponse.
func ToAgendaResponse(a *domain.Agenda) AgendaResponse {
	events := make([]EventResponse, len(a.Events))
	for i := range a.Events {
		events[i] = ToEventResponse(&a.Events[i])
	}
	bills := make([]UpcomingBillResponse, len(a.UpcomingBills))
	for i, b := range a.UpcomingBills {
		bills[i] = UpcomingBillResponse{
			BillID:  b.BillID,
			Name:    b.Name,
			Amount:  b.Amount,
			DueDay:  b.DueDay,
			DueDate: b.DueDate,
		}
	}
	return AgendaResponse{Events: events, UpcomingBills: bills}
}
