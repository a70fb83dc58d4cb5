package models

// UserPreferences represents a per-user settings row.
type UserPreferences struct {
	PreferencesID          string `db:"preferences_id"`
	UserID                 string `db:"user_id"`
	Timezone               string `db:"timezone"`
	QuietHoursStart        string `db:"quiet_hours_start"`
	QuietHoursEnd          string `db:"quiet_hours_end"`
	DefaultReminderMinutes int    `db:"default_reminder_minutes"`
	EmailNotifications     bool   `db:"email_notifications"`
	AuditFields
}
