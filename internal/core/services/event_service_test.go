package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/core/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// --- Test Suite Setup ---

type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo    *MockEventRepository
	mockCalendarRepo *MockCalendarRepository
	mockAuditSvc     *MockAuditService
	service          portssvc.EventSvcFacade
	owner            domain.Actor
	coowner          domain.Actor
	guest            domain.Actor
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)
	suite.mockCalendarRepo = new(MockCalendarRepository)
	suite.mockAuditSvc = new(MockAuditService)
	suite.service = services.NewEventService(suite.mockEventRepo, suite.mockCalendarRepo, suite.mockAuditSvc)
	suite.owner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
	suite.coowner = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleCoowner}
	suite.guest = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleGuest}
}

func eventOn(calendarID, createdBy string) *domain.Event {
	start := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	return &domain.Event{
		EventID:     uuid.NewString(),
		CalendarID:  calendarID,
		Title:       "Dentist",
		Start:       start,
		End:         start.Add(time.Hour),
		AuditFields: domain.AuditFields{CreatedBy: createdBy, CreatedAt: start},
	}
}

// --- Test Cases ---

func (suite *EventServiceTestSuite) TestGetEventByID_OthersPersonalCalendarHidden() {
	ctx := context.Background()
	personal := personalCalendar(suite.owner.UserID)
	event := eventOn(personal.CalendarID, suite.owner.UserID)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Twice()
	suite.mockCalendarRepo.On("FindCalendarByID", ctx, personal.CalendarID).Return(personal, nil).Twice()

	// The calendar owner reads their own event.
	got, err := suite.service.GetEventByID(ctx, suite.owner, event.EventID)
	suite.Require().NoError(err)
	suite.Equal(event.EventID, got.EventID)

	// A coowner reading an event on someone else's personal calendar gets
	// NotFound, same as for the calendar itself.
	got, err = suite.service.GetEventByID(ctx, suite.coowner, event.EventID)
	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EventServiceTestSuite) TestListEvents_QueriesOnlyReadableCalendars() {
	ctx := context.Background()
	household := householdCalendar()
	theirs := personalCalendar(suite.owner.UserID)

	suite.mockCalendarRepo.On("ListCalendars", ctx).Return([]domain.Calendar{*household, *theirs}, nil).Once()
	suite.mockEventRepo.On("ListEventsByCalendars", ctx, []string{household.CalendarID},
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Return([]domain.Event{*eventOn(household.CalendarID, suite.owner.UserID)}, nil).Once()

	events, err := suite.service.ListEvents(ctx, suite.coowner, dto.ListEventsParams{})

	suite.Require().NoError(err)
	suite.Len(events, 1)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestListEvents_NamedHiddenCalendarRejected() {
	ctx := context.Background()
	personal := personalCalendar(suite.owner.UserID)

	suite.mockCalendarRepo.On("FindCalendarByID", ctx, personal.CalendarID).Return(personal, nil).Once()

	events, err := suite.service.ListEvents(ctx, suite.coowner, dto.ListEventsParams{CalendarID: personal.CalendarID})

	suite.Require().Error(err)
	suite.Nil(events)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "ListEventsByCalendars", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEvent_OthersPersonalCalendarForbidden() {
	ctx := context.Background()
	personal := personalCalendar(suite.owner.UserID)
	start := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)

	suite.mockCalendarRepo.On("FindCalendarByID", ctx, personal.CalendarID).Return(personal, nil).Once()

	event, err := suite.service.CreateEvent(ctx, suite.coowner, dto.CreateEventRequest{
		CalendarID: personal.CalendarID,
		Title:      "Sneaky",
		Start:      start,
		End:        start.Add(time.Hour),
	})

	suite.Require().Error(err)
	suite.Nil(event)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "SaveEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestUpdateEvent_GuestForbidden() {
	ctx := context.Background()
	household := householdCalendar()
	event := eventOn(household.CalendarID, suite.owner.UserID)
	title := "Rescheduled"

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockCalendarRepo.On("FindCalendarByID", ctx, household.CalendarID).Return(household, nil).Once()

	updated, err := suite.service.UpdateEvent(ctx, suite.guest, event.EventID, dto.UpdateEventRequest{Title: &title})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestDeleteEvent_CreatorAlwaysAllowed() {
	ctx := context.Background()
	household := householdCalendar()
	event := eventOn(household.CalendarID, suite.coowner.UserID)

	suite.mockEventRepo.On("FindEventByID", ctx, event.EventID).Return(event, nil).Once()
	suite.mockEventRepo.On("DeleteEvent", ctx, event.EventID).Return(nil).Once()
	suite.mockAuditSvc.On("Record", ctx, suite.coowner.UserID, domain.AuditDelete, "event", event.EventID, mock.Anything).Once()

	err := suite.service.DeleteEvent(ctx, suite.coowner, event.EventID)

	suite.Require().NoError(err)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestEventService(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
