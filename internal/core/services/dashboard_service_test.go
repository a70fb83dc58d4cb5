package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// MockSalaryService is a mock type for the SalarySvcFacade interface
type MockSalaryService struct {
	mock.Mock
}

func (m *MockSalaryService) CurrentSalaries(ctx context.Context, users []domain.User) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, users)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockSalaryService) ReplaceSalary(ctx context.Context, actor domain.Actor, req dto.ReplaceSalaryRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Test Suite Setup ---

type DashboardServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockBillRepo     *MockBillRepository
	mockCategoryRepo *MockCategoryRepository
	mockUserRepo     *MockUserRepository
	mockSalarySvc    *MockSalaryService
	service          portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockSalarySvc = new(MockSalaryService)
	suite.service = services.NewDashboardService(suite.mockTxnRepo, suite.mockBillRepo, suite.mockCategoryRepo, suite.mockUserRepo, suite.mockSalarySvc, "UTC")
}

func monthTxn(txnType domain.TransactionType, categoryID, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          txnType,
		AccountID:     "acc-main",
		CategoryID:    categoryID,
		Amount:        decimal.RequireFromString(amount),
		Date:          time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestStats_IncomeIsSumOfCurrentSalaries() {
	ctx := context.Background()
	month, year := 8, 2026
	owner := domain.User{UserID: uuid.NewString(), Name: "Harish", Role: domain.RoleOwner}
	coowner := domain.User{UserID: uuid.NewString(), Name: "Priya", Role: domain.RoleCoowner}
	users := []domain.User{owner, coowner}
	groceries := domain.Category{CategoryID: "cat-groceries", Name: "Groceries", Type: domain.CategoryExpense}

	// A stray income transaction in the month must NOT count towards total
	// income; only the current salaries do.
	txns := []domain.Transaction{
		monthTxn(domain.TransactionIncome, "cat-refund", "500"),
		monthTxn(domain.TransactionExpense, groceries.CategoryID, "450.25"),
	}

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.MatchedBy(func(filter portsrepo.TransactionFilter) bool {
		// The whole month, with the limit disabled.
		return filter.Limit == -1 && filter.StartDate != nil && filter.StartDate.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	})).Return(txns, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, true).Return([]domain.Category{groceries}, nil).Once()
	suite.mockUserRepo.On("ListUsers", ctx).Return(users, nil).Once()
	suite.mockSalarySvc.On("CurrentSalaries", ctx, users).Return(map[string]decimal.Decimal{
		owner.UserID:   decimal.RequireFromString("3000"),
		coowner.UserID: decimal.RequireFromString("2500"),
	}, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{testBill("Electricity", 15)}, nil).Once()
	suite.mockTxnRepo.On("ListRecent", ctx, 10).Return([]domain.Transaction{}, nil).Once()

	stats, err := suite.service.Stats(ctx, &month, &year)

	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.Equal(decimal.RequireFromString("5500")), "income is the salary sum, got %s", stats.TotalIncome)
	suite.True(stats.TotalExpenses.Equal(decimal.RequireFromString("450.25")))
	suite.True(stats.MonthlySurplus.Equal(decimal.RequireFromString("5049.75")))
	suite.True(stats.SavingsRate.Equal(decimal.RequireFromString("91.81")), "got %s", stats.SavingsRate)
	suite.True(stats.CategoryBreakdown["Groceries"].Equal(decimal.RequireFromString("450.25")))
	suite.Len(stats.UpcomingBills, 1)
}

func (suite *DashboardServiceTestSuite) TestStats_IncomeFollowsReplacedSalary() {
	ctx := context.Background()
	month, year := 8, 2026
	owner := domain.User{UserID: uuid.NewString(), Name: "Harish", Role: domain.RoleOwner}
	category := domain.Category{CategoryID: "cat-harish", Name: "Harish Salary", Type: domain.CategoryIncome}
	replaced := decimal.RequireFromString("3210.50")

	// Real salary derivation over the mocked store: after a salary
	// replacement the category holds exactly one income transaction, and the
	// dashboard income must equal its amount.
	salarySvc := services.NewSalaryService(suite.mockTxnRepo, suite.mockCategoryRepo, new(MockAccountRepository), suite.mockUserRepo, new(MockAuditService), "UTC")
	service := services.NewDashboardService(suite.mockTxnRepo, suite.mockBillRepo, suite.mockCategoryRepo, suite.mockUserRepo, salarySvc, "UTC")

	suite.mockTxnRepo.On("ListTransactions", ctx, mock.Anything).Return([]domain.Transaction{}, nil).Once()
	suite.mockCategoryRepo.On("ListCategories", ctx, true).Return([]domain.Category{category}, nil).Once()
	suite.mockUserRepo.On("ListUsers", ctx).Return([]domain.User{owner}, nil).Once()
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, category.CategoryID, owner.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{salaryTxn(category.CategoryID, owner.UserID, "3210.50", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))}, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{}, nil).Once()
	suite.mockTxnRepo.On("ListRecent", ctx, 10).Return([]domain.Transaction{}, nil).Once()

	stats, err := service.Stats(ctx, &month, &year)

	suite.Require().NoError(err)
	suite.True(stats.TotalIncome.Equal(replaced), "got %s", stats.TotalIncome)
	suite.True(stats.CurrentSalaries[owner.UserID].Equal(replaced))
}

// --- Run Test Suite ---

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
