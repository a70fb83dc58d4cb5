package domain

// UserPreferences holds per-user notification and timezone settings. A row is
// created lazily with these defaults the first time preferences are read.
type UserPreferences struct {
	PreferencesID          string `json:"preferencesID"`
	UserID                 string `json:"userID"`
	Timezone               string `json:"timezone"`
	QuietHoursStart        string `json:"quietHoursStart"` // "HH:MM"
	QuietHoursEnd          string `json:"quietHoursEnd"`   // "HH:MM"
	DefaultReminderMinutes int    `json:"defaultReminderMinutes"`
	EmailNotifications     bool   `json:"emailNotifications"`
	AuditFields
}

// DefaultPreferences returns the defaults applied on first access.
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:                 userID,
		Timezone:               "Europe/Paris",
		QuietHoursStart:        "22:00",
		QuietHoursEnd:          "08:00",
		DefaultReminderMinutes: 30,
		EmailNotifications:     true,
	}
}
