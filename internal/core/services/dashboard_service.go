package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
)

// recentTransactionCount is how many transactions the dashboard shows.
const recentTransactionCount = 10

// dashboardService aggregates the household's financial picture.
type dashboardService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	billRepo        portsrepo.BillRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	salarySvc       portssvc.SalarySvcFacade
	location        *time.Location
}

// NewDashboardService creates a new instance of dashboardService.
func NewDashboardService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	salarySvc portssvc.SalarySvcFacade,
	timezone string,
) portssvc.DashboardSvcFacade {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}
	return &dashboardService{
		transactionRepo: transactionRepo,
		billRepo:        billRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		salarySvc:       salarySvc,
		location:        location,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

// Stats computes the dashboard payload for the given month/year, defaulting
// to the current month.
//
// Total income is the sum of current salaries, not the month's income
// transactions, so a mid-month raise shows up immediately. Expenses and the
// category breakdown come from the month's expense transactions.
func (s *dashboardService) Stats(ctx context.Context, month, year *int) (*domain.DashboardStats, error) {
	now := time.Now().In(s.location)
	m, y := int(now.Month()), now.Year()
	if month != nil {
		m = *month
	}
	if year != nil {
		y = *year
	}

	monthStart := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	txns, err := s.transactionRepo.ListTransactions(ctx, portsrepo.TransactionFilter{
		StartDate: &monthStart,
		EndDate:   &monthEnd,
		Limit:     -1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for dashboard: %w", err)
	}

	categoryNames, err := s.categoryNamesByID(ctx)
	if err != nil {
		return nil, err
	}

	totalExpenses := decimal.Zero
	breakdown := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if txn.Type != domain.TransactionExpense {
			continue
		}
		totalExpenses = totalExpenses.Add(txn.Amount)
		name := categoryNames[txn.CategoryID]
		if name == "" {
			name = "Uncategorized"
		}
		breakdown[name] = breakdown[name].Add(txn.Amount)
	}

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for dashboard: %w", err)
	}
	salaries, err := s.salarySvc.CurrentSalaries(ctx, users)
	if err != nil {
		return nil, err
	}
	totalIncome := decimal.Zero
	for _, amount := range salaries {
		totalIncome = totalIncome.Add(amount)
	}

	surplus := totalIncome.Sub(totalExpenses)
	savingsRate := decimal.Zero
	if totalIncome.IsPositive() {
		savingsRate = surplus.Div(totalIncome).Mul(decimal.NewFromInt(100)).Round(2)
	}

	bills, err := s.billRepo.ListBills(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills for dashboard: %w", err)
	}
	upcoming := make([]domain.UpcomingBill, 0, len(bills))
	for _, bill := range bills {
		upcoming = append(upcoming, domain.UpcomingBill{
			BillID:  bill.BillID,
			Name:    bill.Name,
			Amount:  bill.ExpectedAmount,
			DueDay:  bill.DueDay,
			DueDate: domain.NextOccurrence(bill.DueDay, now),
		})
	}

	recent, err := s.transactionRepo.ListRecent(ctx, recentTransactionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent transactions: %w", err)
	}

	return &domain.DashboardStats{
		TotalIncome:        totalIncome,
		TotalExpenses:      totalExpenses,
		MonthlySurplus:     surplus,
		SavingsRate:        savingsRate,
		CurrentSalaries:    salaries,
		UpcomingBills:      upcoming,
		CategoryBreakdown:  breakdown,
		RecentTransactions: recent,
	}, nil
}

// categoryNamesByID maps category ids to display names, inactive ones
// included so historical expenses keep their labels.
func (s *dashboardService) categoryNamesByID(ctx context.Context) (map[string]string, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for dashboard: %w", err)
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}
	return names, nil
}
