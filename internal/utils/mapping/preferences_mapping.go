package mapping

import (
	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelPreferences converts domain UserPreferences to a model row
func ToModelPreferences(d domain.UserPreferences) models.UserPreferences {
	return models.UserPreferences{
		PreferencesID:          d.PreferencesID,
		UserID:                 d.UserID,
		Timezone:               d.Timezone,
		QuietHoursStart:        d.QuietHoursStart,
		QuietHoursEnd:          d.QuietHoursEnd,
		DefaultReminderMinutes: d.DefaultReminderMinutes,
		EmailNotifications:     d.EmailNotifications,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPreferences converts a model row to domain UserPreferences
func ToDomainPreferences(m models.UserPreferences) domain.UserPreferences {
	return domain.UserPreferences{
		PreferencesID:          m.PreferencesID,
		UserID:                 m.UserID,
		Timezone:               m.Timezone,
		QuietHoursStart:        m.QuietHoursStart,
		QuietHoursEnd:          m.QuietHoursEnd,
		DefaultReminderMinutes: m.DefaultReminderMinutes,
		EmailNotifications:     m.EmailNotifications,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
