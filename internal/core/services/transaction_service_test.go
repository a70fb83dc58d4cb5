package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListByCategoryAndCreator(ctx context.Context, categoryID, createdBy string, txnType domain.TransactionType) ([]domain.Transaction, error) {
	args := m.Called(ctx, categoryID, createdBy, txnType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListRecent(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string) error {
	args := m.Called(ctx, transactionID, balanceChanges, userID)
	return args.Error(0)
}

func (m *MockTransactionRepository) ReplaceTransactions(ctx context.Context, deleteIDs []string, newTxn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, deleteIDs, newTxn, balanceChanges)
	return args.Error(0)
}

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ApplyBalanceChangesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, userID, now)
	return args.Error(0)
}

// MockCategoryRepository is a mock type for the CategoryRepositoryFacade interface
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindIncomeCategoriesNameContains(ctx context.Context, substring string) ([]domain.Category, error) {
	args := m.Called(ctx, substring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error {
	args := m.Called(ctx, categoryID, userID, now)
	return args.Error(0)
}

// MockAuditService is a mock type for the AuditSvcFacade interface
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, userID, action, entity, entityID string, changes map[string]any) {
	m.Called(ctx, userID, action, entity, entityID, changes)
}

func (m *MockAuditService) ListAuditLogs(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.AuditLog, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditLog), args.Error(1)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockCategoryRepo *MockCategoryRepository
	mockAuditSvc     *MockAuditService
	service          portssvc.TransactionSvcFacade
	owner            domain.Actor
	guest            domain.Actor
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockCategoryRepo, suite.mockAuditSvc)
	suite.owner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	suite.guest = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleGuest}
}

func (suite *TransactionServiceTestSuite) activeAccounts(ids ...string) map[string]domain.Account {
	accounts := make(map[string]domain.Account, len(ids))
	for _, id := range ids {
		accounts[id] = domain.Account{AccountID: id, Name: "Account " + id, IsActive: true}
	}
	return accounts
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseSubtractsBalance() {
	ctx := context.Background()
	accountID := uuid.NewString()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:       domain.TransactionExpense,
		AccountID:  accountID,
		CategoryID: categoryID,
		Amount:     decimal.RequireFromString("45.50"),
		Date:       "2026-08-15",
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{accountID}).Return(suite.activeAccounts(accountID), nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID, IsActive: true}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return len(changes) == 1 && changes[accountID].Equal(decimal.RequireFromString("-45.50"))
	})).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.owner.UserID, domain.AuditCreate, "transaction", mock.AnythingOfType("string"), mock.Anything).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.TransactionExpense, txn.Type)
	suite.Equal(suite.owner.UserID, txn.CreatedBy)
	suite.Equal("2026-08-15", txn.Date.Format("2006-01-02"))

	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAuditSvc.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_TransferMovesBothBalances() {
	ctx := context.Background()
	fromID := uuid.NewString()
	toID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:        domain.TransactionTransfer,
		AccountID:   fromID,
		ToAccountID: toID,
		Amount:      decimal.NewFromInt(200),
		Date:        "2026-08-01",
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{fromID, toID}).Return(suite.activeAccounts(fromID, toID), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[fromID].Equal(decimal.NewFromInt(-200)) && changes[toID].Equal(decimal.NewFromInt(200))
	})).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.owner.UserID, domain.AuditCreate, "transaction", mock.AnythingOfType("string"), mock.Anything).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Empty(txn.CategoryID)

	suite.mockTxnRepo.AssertExpectations(suite.T())
	// No category lookup for transfers
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "FindCategoryByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_GuestForbidden() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       domain.TransactionExpense,
		AccountID:  uuid.NewString(),
		CategoryID: uuid.NewString(),
		Amount:     decimal.NewFromInt(10),
		Date:       "2026-08-15",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.guest, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_BadDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Type:       domain.TransactionExpense,
		AccountID:  uuid.NewString(),
		CategoryID: uuid.NewString(),
		Amount:     decimal.NewFromInt(10),
		Date:       "15/08/2026",
	}

	txn, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InactiveAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:       domain.TransactionExpense,
		AccountID:  accountID,
		CategoryID: uuid.NewString(),
		Amount:     decimal.NewFromInt(10),
		Date:       "2026-08-15",
	}

	inactive := map[string]domain.Account{accountID: {AccountID: accountID, IsActive: false}}
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{accountID}).Return(inactive, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MissingAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Type:       domain.TransactionExpense,
		AccountID:  accountID,
		CategoryID: uuid.NewString(),
		Amount:     decimal.NewFromInt(10),
		Date:       "2026-08-15",
	}

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, []string{accountID}).Return(map[string]domain.Account{}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, suite.owner, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_ReversesStoredEffects() {
	ctx := context.Background()
	transactionID := uuid.NewString()
	accountID := uuid.NewString()
	stored := &domain.Transaction{
		TransactionID: transactionID,
		Type:          domain.TransactionExpense,
		AccountID:     accountID,
		CategoryID:    uuid.NewString(),
		Amount:        decimal.RequireFromString("80.25"),
	}

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(stored, nil).Once()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, transactionID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Deleting an expense puts the money back.
		return len(changes) == 1 && changes[accountID].Equal(decimal.RequireFromString("80.25"))
	}), suite.owner.UserID).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.owner.UserID, domain.AuditDelete, "transaction", transactionID, mock.Anything).Once()

	err := suite.service.DeleteTransaction(ctx, suite.owner, transactionID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_GuestForbidden() {
	ctx := context.Background()

	err := suite.service.DeleteTransaction(ctx, suite.guest, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "DeleteTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	transactionID := uuid.NewString()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, transactionID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, suite.owner, transactionID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Run Test Suite ---

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
