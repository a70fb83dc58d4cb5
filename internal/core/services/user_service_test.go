package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// --- Test Suite Setup ---

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	mockAuditSvc *MockAuditService
	service      portssvc.UserSvcFacade
	owner        domain.Actor
	coowner      domain.Actor
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockAuditSvc)
	suite.owner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	suite.coowner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCoowner}
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestListUsers_OwnerOnly() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: uuid.NewString(), Email: "harish@budget.app", Role: domain.RoleOwner},
		{UserID: uuid.NewString(), Email: "spouse@budget.app", Role: domain.RoleCoowner},
	}

	suite.mockUserRepo.On("ListUsers", ctx).Return(users, nil).Once()

	listed, err := suite.service.ListUsers(ctx, suite.owner)
	suite.Require().NoError(err)
	suite.Len(listed, 2)

	// Coowners cannot list users.
	listed, err = suite.service.ListUsers(ctx, suite.coowner)
	suite.Require().Error(err)
	suite.Nil(listed)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestHouseholdMembers_NoAccessCheck() {
	ctx := context.Background()
	users := []domain.User{
		{UserID: uuid.NewString(), Email: "harish@budget.app", Role: domain.RoleOwner},
	}

	suite.mockUserRepo.On("ListUsers", ctx).Return(users, nil).Once()

	listed, err := suite.service.HouseholdMembers(ctx)
	suite.Require().NoError(err)
	suite.Len(listed, 1)
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Email:    "kid@budget.app",
		Name:     "Kid",
		Role:     domain.RoleGuest,
		Password: "something-long-enough",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		hashOK := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil
		return user.Email == req.Email && user.Role == domain.RoleGuest && user.IsActive && hashOK
	})).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.owner.UserID, domain.AuditCreate, "user", mock.AnythingOfType("string"), mock.Anything).Once()

	user, err := suite.service.CreateUser(ctx, suite.owner, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.Equal(suite.owner.UserID, user.CreatedBy)

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_CoownerForbidden() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Email: "x@budget.app", Name: "X", Role: domain.RoleGuest, Password: "irrelevant"}

	user, err := suite.service.CreateUser(ctx, suite.coowner, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUsers_SeedsEmptyStore() {
	ctx := context.Background()

	suite.mockUserRepo.On("CountUsers", ctx).Return(int64(0), nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "harish@budget.app" && user.Role == domain.RoleOwner
	})).Return(nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "spouse@budget.app" && user.Role == domain.RoleCoowner
	})).Return(nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Email == "guest@budget.app" && user.Role == domain.RoleGuest
	})).Return(nil).Once()

	err := suite.service.EnsureDefaultUsers(ctx, "changeme123")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestEnsureDefaultUsers_SkipsPopulatedStore() {
	ctx := context.Background()

	suite.mockUserRepo.On("CountUsers", ctx).Return(int64(3), nil).Once()

	err := suite.service.EnsureDefaultUsers(ctx, "changeme123")

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
