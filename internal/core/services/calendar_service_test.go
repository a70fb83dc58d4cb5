package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// MockCalendarRepository is a mock type for the CalendarRepositoryFacade interface
type MockCalendarRepository struct {
	mock.Mock
}

func (m *MockCalendarRepository) FindCalendarByID(ctx context.Context, calendarID string) (*domain.Calendar, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

func (m *MockCalendarRepository) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calendar), args.Error(1)
}

func (m *MockCalendarRepository) FindDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

func (m *MockCalendarRepository) SaveCalendar(ctx context.Context, calendar domain.Calendar) error {
	args := m.Called(ctx, calendar)
	return args.Error(0)
}

func (m *MockCalendarRepository) UpdateCalendar(ctx context.Context, calendar domain.Calendar) error {
	args := m.Called(ctx, calendar)
	return args.Error(0)
}

func (m *MockCalendarRepository) DeleteCalendar(ctx context.Context, calendarID string) error {
	args := m.Called(ctx, calendarID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type CalendarServiceTestSuite struct {
	suite.Suite
	mockCalendarRepo *MockCalendarRepository
	mockAuditSvc     *MockAuditService
	service          portssvc.CalendarSvcFacade
	owner            domain.Actor
	coowner          domain.Actor
	guest            domain.Actor
}

func (suite *CalendarServiceTestSuite) SetupTest() {
	suite.mockCalendarRepo = new(MockCalendarRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewCalendarService(suite.mockCalendarRepo, suite.mockAuditSvc)
	suite.owner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	suite.coowner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCoowner}
	suite.guest = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleGuest}
}

func householdCalendar() *domain.Calendar {
	return &domain.Calendar{CalendarID: uuid.NewString(), Name: "Household Calendar", Scope: domain.ScopeHousehold, IsDefault: true}
}

func personalCalendar(ownerUserID string) *domain.Calendar {
	return &domain.Calendar{CalendarID: uuid.NewString(), Name: "My Calendar", Scope: domain.ScopePersonal, OwnerUserID: ownerUserID}
}

// --- Test Cases ---

func (suite *CalendarServiceTestSuite) TestGetCalendarByID_PersonalHiddenFromOthers() {
	ctx := context.Background()
	personal := personalCalendar(suite.owner.UserID)

	suite.mockCalendarRepo.On("FindCalendarByID", ctx, personal.CalendarID).Return(personal, nil).Twice()

	// The owner of the calendar sees it.
	calendar, err := suite.service.GetCalendarByID(ctx, suite.owner, personal.CalendarID)
	suite.Require().NoError(err)
	suite.Equal(personal.CalendarID, calendar.CalendarID)

	// Anyone else gets NotFound, not Forbidden: hidden calendars must be
	// indistinguishable from absent ones.
	calendar, err = suite.service.GetCalendarByID(ctx, suite.coowner, personal.CalendarID)
	suite.Require().Error(err)
	suite.Nil(calendar)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CalendarServiceTestSuite) TestListCalendars_FiltersOthersPersonal() {
	ctx := context.Background()
	household := householdCalendar()
	mine := personalCalendar(suite.coowner.UserID)
	theirs := personalCalendar(suite.owner.UserID)

	suite.mockCalendarRepo.On("ListCalendars", ctx).Return([]domain.Calendar{*household, *mine, *theirs}, nil).Once()

	calendars, err := suite.service.ListCalendars(ctx, suite.coowner)

	suite.Require().NoError(err)
	suite.Require().Len(calendars, 2)
	suite.Equal(household.CalendarID, calendars[0].CalendarID)
	suite.Equal(mine.CalendarID, calendars[1].CalendarID)
}

func (suite *CalendarServiceTestSuite) TestReadableCalendarIDs_GuestSeesHouseholdOnly() {
	ctx := context.Background()
	household := householdCalendar()
	personal := personalCalendar(suite.owner.UserID)

	suite.mockCalendarRepo.On("ListCalendars", ctx).Return([]domain.Calendar{*household, *personal}, nil).Once()

	ids, err := suite.service.ReadableCalendarIDs(ctx, suite.guest)

	suite.Require().NoError(err)
	suite.Equal([]string{household.CalendarID}, ids)
}

func (suite *CalendarServiceTestSuite) TestCreateCalendar_PersonalOwnedByCaller() {
	ctx := context.Background()

	suite.mockCalendarRepo.On("SaveCalendar", ctx, mock.MatchedBy(func(calendar domain.Calendar) bool {
		return calendar.Scope == domain.ScopePersonal && calendar.OwnerUserID == suite.coowner.UserID
	})).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.coowner.UserID, domain.AuditCreate, "calendar", mock.AnythingOfType("string"), mock.Anything).Once()

	calendar, err := suite.service.CreateCalendar(ctx, suite.coowner, dto.CreateCalendarRequest{
		Name:  "Errands",
		Scope: domain.ScopePersonal,
	})

	suite.Require().NoError(err)
	suite.Equal(suite.coowner.UserID, calendar.OwnerUserID)
	suite.mockCalendarRepo.AssertExpectations(suite.T())
}

func (suite *CalendarServiceTestSuite) TestDeleteCalendar_DefaultHouseholdRejected() {
	ctx := context.Background()
	household := householdCalendar()

	suite.mockCalendarRepo.On("FindCalendarByID", ctx, household.CalendarID).Return(household, nil).Once()

	err := suite.service.DeleteCalendar(ctx, suite.owner, household.CalendarID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockCalendarRepo.AssertNotCalled(suite.T(), "DeleteCalendar", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestCalendarService(t *testing.T) {
	suite.Run(t, new(CalendarServiceTestSuite))
}
