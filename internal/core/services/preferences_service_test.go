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

// MockPreferencesRepository is a mock type for the PreferencesRepositoryFacade interface
type MockPreferencesRepository struct {
	mock.Mock
}

func (m *MockPreferencesRepository) FindPreferencesByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserPreferences), args.Error(1)
}

func (m *MockPreferencesRepository) UpsertPreferences(ctx context.Context, prefs domain.UserPreferences) error {
	args := m.Called(ctx, prefs)
	return args.Error(0)
}

// --- Test Suite Setup ---

type PreferencesServiceTestSuite struct {
	suite.Suite
	mockPrefsRepo *MockPreferencesRepository
	service       portssvc.PreferencesSvcFacade
	actor         domain.Actor
}

func (suite *PreferencesServiceTestSuite) SetupTest() {
	suite.mockPrefsRepo = new(MockPreferencesRepository)
	suite.service = services.NewPreferencesService(suite.mockPrefsRepo)
	suite.actor = domain.Actor{UserID: uuid.NewString(), Role: domain.RoleOwner}
}

func (suite *PreferencesServiceTestSuite) existingPrefs() *domain.UserPreferences {
	prefs := domain.DefaultPreferences(suite.actor.UserID)
	prefs.PreferencesID = uuid.NewString()
	return &prefs
}

// --- Test Cases ---

func (suite *PreferencesServiceTestSuite) TestGetPreferences_CreatesDefaultsOnFirstAccess() {
	ctx := context.Background()

	suite.mockPrefsRepo.On("FindPreferencesByUserID", ctx, suite.actor.UserID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPrefsRepo.On("UpsertPreferences", ctx, mock.MatchedBy(func(prefs domain.UserPreferences) bool {
		return prefs.UserID == suite.actor.UserID && prefs.Timezone == "Europe/Paris" && prefs.PreferencesID != ""
	})).Return(nil).Once()

	prefs, err := suite.service.GetPreferences(ctx, suite.actor)

	suite.Require().NoError(err)
	suite.Equal("22:00", prefs.QuietHoursStart)
	suite.mockPrefsRepo.AssertExpectations(suite.T())
}

func (suite *PreferencesServiceTestSuite) TestUpdatePreferences_RejectsMalformedQuietHours() {
	ctx := context.Background()

	for _, bad := range []string{"25:00", "10pm", "9:5:0", ""} {
		suite.mockPrefsRepo.On("FindPreferencesByUserID", ctx, suite.actor.UserID).Return(suite.existingPrefs(), nil).Once()

		prefs, err := suite.service.UpdatePreferences(ctx, suite.actor, dto.UpdatePreferencesRequest{QuietHoursStart: &bad})

		suite.Require().Error(err, "quiet hours %q should be rejected", bad)
		suite.Nil(prefs)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockPrefsRepo.AssertNotCalled(suite.T(), "UpsertPreferences", mock.Anything, mock.Anything)
}

func (suite *PreferencesServiceTestSuite) TestUpdatePreferences_RejectsUnknownTimezone() {
	ctx := context.Background()
	timezone := "Mars/Olympus_Mons"

	suite.mockPrefsRepo.On("FindPreferencesByUserID", ctx, suite.actor.UserID).Return(suite.existingPrefs(), nil).Once()

	prefs, err := suite.service.UpdatePreferences(ctx, suite.actor, dto.UpdatePreferencesRequest{Timezone: &timezone})

	suite.Require().Error(err)
	suite.Nil(prefs)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PreferencesServiceTestSuite) TestUpdatePreferences_StoresValidChanges() {
	ctx := context.Background()
	start := "21:30"
	end := "07:15"
	minutes := 60

	suite.mockPrefsRepo.On("FindPreferencesByUserID", ctx, suite.actor.UserID).Return(suite.existingPrefs(), nil).Once()
	suite.mockPrefsRepo.On("UpsertPreferences", ctx, mock.MatchedBy(func(prefs domain.UserPreferences) bool {
		return prefs.QuietHoursStart == start && prefs.QuietHoursEnd == end && prefs.DefaultReminderMinutes == minutes
	})).Return(nil).Once()

	prefs, err := suite.service.UpdatePreferences(ctx, suite.actor, dto.UpdatePreferencesRequest{
		QuietHoursStart:        &start,
		QuietHoursEnd:          &end,
		DefaultReminderMinutes: &minutes,
	})

	suite.Require().NoError(err)
	suite.Equal(start, prefs.QuietHoursStart)
	suite.Equal(end, prefs.QuietHoursEnd)
	suite.mockPrefsRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestPreferencesService(t *testing.T) {
	suite.Run(t, new(PreferencesServiceTestSuite))
}
