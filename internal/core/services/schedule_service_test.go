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

// MockBillRepository is a mock type for the BillRepositoryFacade interface
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

func (m *MockBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) UpdateBill(ctx context.Context, bill domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

func (m *MockBillRepository) DeleteBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// MockEventRepository is a mock type for the EventRepositoryFacade interface
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) FindEventBySource(ctx context.Context, sourceType, sourceID string) (*domain.Event, error) {
	args := m.Called(ctx, sourceType, sourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListEventsByCalendars(ctx context.Context, calendarIDs []string, from, to time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, calendarIDs, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) SaveEventWithReminder(ctx context.Context, event domain.Event, reminder domain.Reminder) error {
	args := m.Called(ctx, event, reminder)
	return args.Error(0)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}

// MockCalendarService is a mock type for the CalendarSvcFacade interface
type MockCalendarService struct {
	mock.Mock
}

func (m *MockCalendarService) CreateCalendar(ctx context.Context, actor domain.Actor, req dto.CreateCalendarRequest) (*domain.Calendar, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

func (m *MockCalendarService) GetCalendarByID(ctx context.Context, actor domain.Actor, calendarID string) (*domain.Calendar, error) {
	args := m.Called(ctx, actor, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

func (m *MockCalendarService) ListCalendars(ctx context.Context, actor domain.Actor) ([]domain.Calendar, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Calendar), args.Error(1)
}

func (m *MockCalendarService) ReadableCalendarIDs(ctx context.Context, actor domain.Actor) ([]string, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCalendarService) DeleteCalendar(ctx context.Context, actor domain.Actor, calendarID string) error {
	args := m.Called(ctx, actor, calendarID)
	return args.Error(0)
}

func (m *MockCalendarService) EnsureDefaultHouseholdCalendar(ctx context.Context) (*domain.Calendar, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Calendar), args.Error(1)
}

// --- Test Suite Setup ---

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockBillRepo    *MockBillRepository
	mockEventRepo   *MockEventRepository
	mockCalendarSvc *MockCalendarService
	service         portssvc.ScheduleSvcFacade
	household       *domain.Calendar
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockBillRepo = new(MockBillRepository)
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockCalendarSvc = new(MockCalendarService)
	suite.service = services.NewScheduleService(suite.mockBillRepo, suite.mockEventRepo, suite.mockCalendarSvc, "UTC")
	suite.household = &domain.Calendar{
		CalendarID: uuid.NewString(),
		Name:       "Household Calendar",
		Scope:      domain.ScopeHousehold,
		IsDefault:  true,
	}
}

func testBill(name string, dueDay int) domain.Bill {
	return domain.Bill{
		BillID:         uuid.NewString(),
		Name:           name,
		Provider:       "EDF",
		CategoryID:     uuid.NewString(),
		AccountID:      uuid.NewString(),
		Recurrence:     domain.RecurrenceMonthly,
		DueDay:         dueDay,
		ExpectedAmount: decimal.RequireFromString("89.90"),
		IsActive:       true,
	}
}

// --- Test Cases ---

func (suite *ScheduleServiceTestSuite) TestGenerateBillEvents_CreatesEventAndReminder() {
	ctx := context.Background()
	bill := testBill("Electricity", 15)

	suite.mockCalendarSvc.On("EnsureDefaultHouseholdCalendar", ctx).Return(suite.household, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{bill}, nil).Once()
	suite.mockEventRepo.On("FindEventBySource", ctx, domain.EventSourceBill, bill.BillID).Return(nil, apperrors.ErrNotFound).Once()

	suite.mockEventRepo.On("SaveEventWithReminder", ctx,
		mock.MatchedBy(func(event domain.Event) bool {
			return event.CalendarID == suite.household.CalendarID &&
				event.Title == "Electricity Due" &&
				event.Start.Hour() == 9 &&
				event.End.Sub(event.Start) == time.Hour &&
				len(event.Tags) == 1 && event.Tags[0] == domain.TagBills &&
				event.SourceType == domain.EventSourceBill &&
				event.SourceID == bill.BillID
		}),
		mock.MatchedBy(func(reminder domain.Reminder) bool {
			return reminder.OffsetMinutes == domain.DefaultBillReminderOffset &&
				reminder.Channel == domain.ChannelInApp &&
				reminder.Status == domain.ReminderScheduled &&
				reminder.Message == "Bill due tomorrow: Electricity"
		}),
	).Return(nil).Once()

	generated, err := suite.service.GenerateBillEvents(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, generated)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestGenerateBillEvents_SkipsBillsWithExistingEvents() {
	ctx := context.Background()
	bill := testBill("Internet", 5)
	existing := &domain.Event{EventID: uuid.NewString(), SourceType: domain.EventSourceBill, SourceID: bill.BillID}

	suite.mockCalendarSvc.On("EnsureDefaultHouseholdCalendar", ctx).Return(suite.household, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{bill}, nil).Once()
	suite.mockEventRepo.On("FindEventBySource", ctx, domain.EventSourceBill, bill.BillID).Return(existing, nil).Once()

	generated, err := suite.service.GenerateBillEvents(ctx)

	suite.Require().NoError(err)
	suite.Zero(generated)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEventWithReminder", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestGenerateBillEvents_MixedBills() {
	ctx := context.Background()
	covered := testBill("Rent", 1)
	uncovered := testBill("Water", 20)
	existing := &domain.Event{EventID: uuid.NewString(), SourceType: domain.EventSourceBill, SourceID: covered.BillID}

	suite.mockCalendarSvc.On("EnsureDefaultHouseholdCalendar", ctx).Return(suite.household, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{covered, uncovered}, nil).Once()
	suite.mockEventRepo.On("FindEventBySource", ctx, domain.EventSourceBill, covered.BillID).Return(existing, nil).Once()
	suite.mockEventRepo.On("FindEventBySource", ctx, domain.EventSourceBill, uncovered.BillID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEventRepo.On("SaveEventWithReminder", ctx, mock.MatchedBy(func(event domain.Event) bool {
		return event.SourceID == uncovered.BillID
	}), mock.Anything).Return(nil).Once()

	generated, err := suite.service.GenerateBillEvents(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, generated)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestAgenda_FiltersBillsBeyondHorizon() {
	ctx := context.Background()
	actor := domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	calendarIDs := []string{suite.household.CalendarID}
	soon := testBill("Electricity", time.Now().AddDate(0, 0, 2).Day())
	// Roughly three weeks out, so its next occurrence can never fall inside a
	// 7-day horizon whichever month boundary it straddles.
	far := testBill("Insurance", time.Now().AddDate(0, 0, 20).Day())
	event := domain.Event{EventID: uuid.NewString(), CalendarID: suite.household.CalendarID, Title: "Dentist"}

	suite.mockCalendarSvc.On("ReadableCalendarIDs", ctx, actor).Return(calendarIDs, nil).Once()
	suite.mockEventRepo.On("ListEventsByCalendars", ctx, calendarIDs, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Event{event}, nil).Once()
	suite.mockBillRepo.On("ListBills", ctx, true).Return([]domain.Bill{soon, far}, nil).Once()

	agenda, err := suite.service.Agenda(ctx, actor, 7)

	suite.Require().NoError(err)
	suite.Require().NotNil(agenda)
	suite.Len(agenda.Events, 1)
	suite.Require().Len(agenda.UpcomingBills, 1)
	suite.Equal(soon.BillID, agenda.UpcomingBills[0].BillID)
}

// --- Run Test Suite ---

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
