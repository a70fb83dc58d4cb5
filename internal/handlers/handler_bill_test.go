package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
	"github.com/famstack/family_budget_app/internal/handlers"
	"github.com/famstack/family_budget_app/internal/platform/config"
	"github.com/famstack/family_budget_app/internal/utils"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) CreateBill(ctx context.Context, actor domain.Actor, req dto.CreateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillService) UpdateBill(ctx context.Context, actor domain.Actor, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	args := m.Called(ctx, actor, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillService) DeleteBill(ctx context.Context, actor domain.Actor, billID string) error {
	args := m.Called(ctx, actor, billID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Test Suite ---
type BillHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBillService *MockBillService
	jwtSecret       string
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockBillService = new(MockBillService)

	cfg := &config.Config{
		JWTSecret:      suite.jwtSecret,
		LoginRateLimit: "10-M",
		IsProduction:   true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		BillSvc: suite.mockBillService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

// generateTestToken creates a signed JWT for the given role.
func (suite *BillHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	token, err := utils.GenerateJWT(userID, "test@budget.app", string(role), suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *BillHandlerTestSuite) doRequest(method, url string, body []byte, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BillHandlerTestSuite) TestListBills_Success() {
	userID := uuid.NewString()
	expected := []domain.Bill{
		{
			BillID:         uuid.NewString(),
			Name:           "Electricity",
			Recurrence:     domain.RecurrenceMonthly,
			DueDay:         15,
			ExpectedAmount: decimal.RequireFromString("89.90"),
			IsActive:       true,
		},
		{
			BillID:         uuid.NewString(),
			Name:           "Internet",
			Recurrence:     domain.RecurrenceMonthly,
			DueDay:         20,
			ExpectedAmount: decimal.RequireFromString("39.99"),
			IsActive:       true,
		},
	}

	suite.mockBillService.On("ListBills", mock.Anything, true).Return(expected, nil).Once()

	token := suite.generateTestToken(userID, domain.RoleGuest)
	w := suite.doRequest(http.MethodGet, "/api/v1/bills?active_only=true", nil, token)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListBillsResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Require().Len(body.Bills, 2)
	suite.Equal(expected[0].BillID, body.Bills[0].BillID)
	suite.Equal(expected[1].Name, body.Bills[1].Name)

	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestCreateBill_Success() {
	userID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:           "Rent",
		CategoryID:     uuid.NewString(),
		AccountID:      uuid.NewString(),
		Recurrence:     domain.RecurrenceMonthly,
		DueDay:         1,
		ExpectedAmount: decimal.NewFromInt(1200),
	}
	created := &domain.Bill{
		BillID:         uuid.NewString(),
		Name:           req.Name,
		CategoryID:     req.CategoryID,
		AccountID:      req.AccountID,
		Recurrence:     req.Recurrence,
		DueDay:         req.DueDay,
		ExpectedAmount: req.ExpectedAmount,
		IsActive:       true,
	}

	suite.mockBillService.On("CreateBill", mock.Anything, mock.MatchedBy(func(actor domain.Actor) bool {
		return actor.UserID == userID && actor.Role == domain.RoleOwner
	}), req).Return(created, nil).Once()

	payload, _ := json.Marshal(req)
	token := suite.generateTestToken(userID, domain.RoleOwner)
	w := suite.doRequest(http.MethodPost, "/api/v1/bills", payload, token)

	suite.Equal(http.StatusCreated, w.Code)

	var body dto.BillResponse
	err := json.Unmarshal(w.Body.Bytes(), &body)
	suite.Require().NoError(err)
	suite.Equal(created.BillID, body.BillID)
	suite.Equal("Rent", body.Name)

	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestCreateBill_GuestForbidden() {
	userID := uuid.NewString()
	req := dto.CreateBillRequest{
		Name:           "Rent",
		CategoryID:     uuid.NewString(),
		AccountID:      uuid.NewString(),
		Recurrence:     domain.RecurrenceMonthly,
		DueDay:         1,
		ExpectedAmount: decimal.NewFromInt(1200),
	}

	forbidden := fmt.Errorf("%w: guests cannot create bills", apperrors.ErrForbidden)
	suite.mockBillService.On("CreateBill", mock.Anything, mock.Anything, req).Return(nil, forbidden).Once()

	payload, _ := json.Marshal(req)
	token := suite.generateTestToken(userID, domain.RoleGuest)
	w := suite.doRequest(http.MethodPost, "/api/v1/bills", payload, token)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestListBills_Unauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/bills", nil, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "ListBills", mock.Anything, mock.Anything)
}

func (suite *BillHandlerTestSuite) TestGetBill_NotFound() {
	userID := uuid.NewString()
	billID := uuid.NewString()

	suite.mockBillService.On("GetBillByID", mock.Anything, billID).Return(nil, apperrors.ErrNotFound).Once()

	token := suite.generateTestToken(userID, domain.RoleOwner)
	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+billID, nil, token)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockBillService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBillHandler(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
