package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedBy string, now time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedBy, now)
	return args.Error(0)
}

// --- Test Suite Setup ---

type SalaryServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	mockAccountRepo  *MockAccountRepository
	mockUserRepo     *MockUserRepository
	mockAuditSvc     *MockAuditService
	service          portssvc.SalarySvcFacade
}

func (suite *SalaryServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewSalaryService(suite.mockTxnRepo, suite.mockCategoryRepo, suite.mockAccountRepo, suite.mockUserRepo, suite.mockAuditSvc, "UTC")
}

func salaryTxn(categoryID, userID string, amount string, date time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionIncome,
		AccountID:     "acc-main",
		CategoryID:    categoryID,
		Amount:        decimal.RequireFromString(amount),
		Date:          date,
		AuditFields:   domain.AuditFields{CreatedBy: userID, CreatedAt: date},
	}
}

// --- Test Cases ---

func (suite *SalaryServiceTestSuite) TestCurrentSalaries_LatestTransactionWins() {
	ctx := context.Background()
	owner := domain.User{UserID: uuid.NewString(), Name: "Harish", Role: domain.RoleOwner}
	category := domain.Category{CategoryID: "cat-harish", Name: "Harish Salary", Type: domain.CategoryIncome}

	older := salaryTxn(category.CategoryID, owner.UserID, "2800", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	newer := salaryTxn(category.CategoryID, owner.UserID, "3000", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, category.CategoryID, owner.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{newer, older}, nil).Once()

	salaries, err := suite.service.CurrentSalaries(ctx, []domain.User{owner})

	suite.Require().NoError(err)
	suite.Require().Len(salaries, 1)
	suite.True(salaries[owner.UserID].Equal(decimal.RequireFromString("3000")))
}

func (suite *SalaryServiceTestSuite) TestCurrentSalaries_CoownerAliasAndGuestSkipped() {
	ctx := context.Background()
	coowner := domain.User{UserID: uuid.NewString(), Name: "Priya", Role: domain.RoleCoowner}
	guest := domain.User{UserID: uuid.NewString(), Name: "Visitor", Role: domain.RoleGuest}
	aliasCategory := domain.Category{CategoryID: "cat-spouse", Name: "Spouse Salary", Type: domain.CategoryIncome}

	txn := salaryTxn(aliasCategory.CategoryID, coowner.UserID, "2500", time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Priya").Return([]domain.Category{}, nil).Once()
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "spouse").Return([]domain.Category{aliasCategory}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, aliasCategory.CategoryID, coowner.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{txn}, nil).Once()

	salaries, err := suite.service.CurrentSalaries(ctx, []domain.User{coowner, guest})

	suite.Require().NoError(err)
	suite.Require().Len(salaries, 1)
	suite.True(salaries[coowner.UserID].Equal(decimal.RequireFromString("2500")))
	suite.NotContains(salaries, guest.UserID)
	// Guests never trigger category lookups.
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindIncomeCategoriesNameContains", ctx, "Visitor")
}

func (suite *SalaryServiceTestSuite) TestCurrentSalaries_UserWithoutSalaryOmitted() {
	ctx := context.Background()
	owner := domain.User{UserID: uuid.NewString(), Name: "Harish", Role: domain.RoleOwner}
	category := domain.Category{CategoryID: "cat-harish", Name: "Harish Salary", Type: domain.CategoryIncome}

	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, category.CategoryID, owner.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{}, nil).Once()

	salaries, err := suite.service.CurrentSalaries(ctx, []domain.User{owner})

	suite.Require().NoError(err)
	suite.Empty(salaries)
}

func (suite *SalaryServiceTestSuite) TestReplaceSalary_SwapsAllExistingAtomically() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	user := domain.User{UserID: actor.UserID, Name: "Harish", Role: domain.RoleOwner}
	category := domain.Category{CategoryID: "cat-harish", Name: "Harish Salary", Type: domain.CategoryIncome}
	account := domain.Account{AccountID: "acc-main", IsActive: true}

	old1 := salaryTxn(category.CategoryID, actor.UserID, "2500", time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
	old2 := salaryTxn(category.CategoryID, actor.UserID, "2400", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, actor.UserID).Return(&user, nil).Once()
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, category.CategoryID, actor.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{old1, old2}, nil).Once()

	suite.mockTxnRepo.On("ReplaceTransactions", ctx,
		[]string{old1.TransactionID, old2.TransactionID},
		mock.MatchedBy(func(txn domain.Transaction) bool {
			return txn.Type == domain.TransactionIncome &&
				txn.CategoryID == category.CategoryID &&
				txn.Amount.Equal(decimal.RequireFromString("3000")) &&
				txn.Date.Day() == 1 &&
				txn.IsRecurring
		}),
		mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
			// +3000 new, -2500 and -2400 reversed
			return changes["acc-main"].Equal(decimal.RequireFromString("-1900"))
		}),
	).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, actor.UserID, domain.AuditUpdate, "salary", mock.AnythingOfType("string"), mock.Anything).Once()

	txn, err := suite.service.ReplaceSalary(ctx, actor, dto.ReplaceSalaryRequest{
		AccountID: account.AccountID,
		Amount:    decimal.RequireFromString("3000"),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal("Monthly salary", txn.Description)

	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *SalaryServiceTestSuite) TestReplaceSalary_PicksLexicographicallySmallestCategory() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	user := domain.User{UserID: actor.UserID, Name: "Harish", Role: domain.RoleOwner}
	account := domain.Account{AccountID: "acc-main", IsActive: true}
	catB := domain.Category{CategoryID: "cat-b", Name: "Harish Salary", Type: domain.CategoryIncome}
	catA := domain.Category{CategoryID: "cat-a", Name: "Harish Bonus", Type: domain.CategoryIncome}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, actor.UserID).Return(&user, nil).Once()
	// Returned unsorted; the service must order by name.
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{catB, catA}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, catA.CategoryID, actor.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("ReplaceTransactions", ctx, []string{}, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == catA.CategoryID
	}), mock.Anything).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, actor.UserID, domain.AuditUpdate, "salary", mock.AnythingOfType("string"), mock.Anything).Once()

	txn, err := suite.service.ReplaceSalary(ctx, actor, dto.ReplaceSalaryRequest{
		AccountID: account.AccountID,
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	suite.Equal(catA.CategoryID, txn.CategoryID)
}

func (suite *SalaryServiceTestSuite) TestReplaceSalary_DatesInHouseholdTimezone() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	user := domain.User{UserID: actor.UserID, Name: "Harish", Role: domain.RoleOwner}
	category := domain.Category{CategoryID: "cat-harish", Name: "Harish Salary", Type: domain.CategoryIncome}
	account := domain.Account{AccountID: "acc-main", IsActive: true}

	// UTC+14: the furthest zone from the server's locale, so a wrong clock
	// source is most likely to land in the wrong month here.
	location, err := time.LoadLocation("Pacific/Kiritimati")
	suite.Require().NoError(err)
	service := services.NewSalaryService(suite.mockTxnRepo, suite.mockCategoryRepo, suite.mockAccountRepo, suite.mockUserRepo, suite.mockAuditSvc, "Pacific/Kiritimati")

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, actor.UserID).Return(&user, nil).Once()
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{category}, nil).Once()
	suite.mockTxnRepo.On("ListByCategoryAndCreator", ctx, category.CategoryID, actor.UserID, domain.TransactionIncome).
		Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("ReplaceTransactions", ctx, []string{}, mock.Anything, mock.Anything).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, actor.UserID, domain.AuditUpdate, "salary", mock.AnythingOfType("string"), mock.Anything).Once()

	txn, err := service.ReplaceSalary(ctx, actor, dto.ReplaceSalaryRequest{
		AccountID: account.AccountID,
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().NoError(err)
	household := time.Now().In(location)
	suite.Equal(household.Year(), txn.Date.Year())
	suite.Equal(household.Month(), txn.Date.Month())
	suite.Equal(1, txn.Date.Day())
}

func (suite *SalaryServiceTestSuite) TestReplaceSalary_GuestForbidden() {
	ctx := context.Background()
	guest := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleGuest}

	txn, err := suite.service.ReplaceSalary(ctx, guest, dto.ReplaceSalaryRequest{
		AccountID: "acc-main",
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SalaryServiceTestSuite) TestReplaceSalary_NoSalaryCategory() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	user := domain.User{UserID: actor.UserID, Name: "Harish", Role: domain.RoleOwner}
	account := domain.Account{AccountID: "acc-main", IsActive: true}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(&account, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, actor.UserID).Return(&user, nil).Once()
	suite.mockCategoryRepo.On("FindIncomeCategoriesNameContains", ctx, "Harish").Return([]domain.Category{}, nil).Once()

	txn, err := suite.service.ReplaceSalary(ctx, actor, dto.ReplaceSalaryRequest{
		AccountID: account.AccountID,
		Amount:    decimal.NewFromInt(100),
	})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ReplaceTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestSalaryService(t *testing.T) {
	suite.Run(t, new(SalaryServiceTestSuite))
}
