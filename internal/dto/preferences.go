package dto

import "github.com/famstack/family_budget_app/internal/core/domain"

// UpdatePreferencesRequest defines the fields that may change on preferences.
type UpdatePreferencesRequest struct {
	Timezone               *string `json:"timezone"`
	QuietHoursStart        *string `json:"quietHoursStart"`
	QuietHoursEnd          *string `json:"quietHoursEnd"`
	DefaultReminderMinutes *int    `json:"defaultReminderMinutes" binding:"omitempty,min=0"`
	EmailNotifications     *bool   `json:"emailNotifications"`
}

// PreferencesResponse defines the data returned for user preferences.
type PreferencesResponse struct {
	UserID                 string `json:"userID"`
	Timezone               string `json:"timezone"`
	QuietHoursStart        string `json:"quietHoursStart"`
	QuietHoursEnd          string `json:"quietHoursEnd"`
	DefaultReminderMinutes int    `json:"defaultReminderMinutes"`
	EmailNotifications     bool   `json:"emailNotifications"`
}

// ToPreferencesResponse converts domain.UserPreferences to PreferencesResponse.
func ToPreferencesResponse(p *domain.UserPreferences) PreferencesResponse {
	return PreferencesResponse{
		UserID:                 p.UserID,
		Timezone:               p.Timezone,
		QuietHoursStart:        p.QuietHoursStart,
		QuietHoursEnd:          p.QuietHoursEnd,
		DefaultReminderMinutes: p.DefaultReminderMinutes,
		EmailNotifications:     p.EmailNotifications,
	}
}
