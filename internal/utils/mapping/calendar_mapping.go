package mapping

import (
	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelCalendar converts a domain Calendar to a model Calendar
func ToModelCalendar(d domain.Calendar) models.Calendar {
	return models.Calendar{
		CalendarID:  d.CalendarID,
		Name:        d.Name,
		Scope:       models.CalendarScope(d.Scope),
		OwnerUserID: d.OwnerUserID,
		IsDefault:   d.IsDefault,
		Color:       d.Color,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCalendar converts a model Calendar to a domain Calendar
func ToDomainCalendar(m models.Calendar) domain.Calendar {
	return domain.Calendar{
		CalendarID:  m.CalendarID,
		Name:        m.Name,
		Scope:       domain.CalendarScope(m.Scope),
		OwnerUserID: m.OwnerUserID,
		IsDefault:   m.IsDefault,
		Color:       m.Color,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCalendarSlice converts a slice of model Calendars to domain Calendars
func ToDomainCalendarSlice(ms []models.Calendar) []domain.Calendar {
	ds := make([]domain.Calendar, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCalendar(m)
	}
	return ds
}

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:     d.EventID,
		CalendarID:  d.CalendarID,
		Title:       d.Title,
		Notes:       d.Notes,
		Location:    d.Location,
		Start:       d.Start,
		End:         d.End,
		AllDay:      d.AllDay,
		Tags:        d.Tags,
		RRule:       d.RRule,
		SourceType:  d.SourceType,
		SourceID:    d.SourceID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:     m.EventID,
		CalendarID:  m.CalendarID,
		Title:       m.Title,
		Notes:       m.Notes,
		Location:    m.Location,
		Start:       m.Start,
		End:         m.End,
		AllDay:      m.AllDay,
		Tags:        m.Tags,
		RRule:       m.RRule,
		SourceType:  m.SourceType,
		SourceID:    m.SourceID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEventSlice converts a slice of model Events to domain Events
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}

// ToModelReminder converts a domain Reminder to a model Reminder
func ToModelReminder(d domain.Reminder) models.Reminder {
	return models.Reminder{
		ReminderID:    d.ReminderID,
		EventID:       d.EventID,
		OffsetMinutes: d.OffsetMinutes,
		Channel:       string(d.Channel),
		Status:        string(d.Status),
		Message:       d.Message,
		TriggerTime:   d.TriggerTime,
		SentAt:        d.SentAt,
		SnoozedUntil:  d.SnoozedUntil,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReminder converts a model Reminder to a domain Reminder
func ToDomainReminder(m models.Reminder) domain.Reminder {
	return domain.Reminder{
		ReminderID:    m.ReminderID,
		EventID:       m.EventID,
		OffsetMinutes: m.OffsetMinutes,
		Channel:       domain.ReminderChannel(m.Channel),
		Status:        domain.ReminderStatus(m.Status),
		Message:       m.Message,
		TriggerTime:   m.TriggerTime,
		SentAt:        m.SentAt,
		SnoozedUntil:  m.SnoozedUntil,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReminderSlice converts a slice of model Reminders to domain Reminders
func ToDomainReminderSlice(ms []models.Reminder) []domain.Reminder {
	ds := make([]domain.Reminder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReminder(m)
	}
	return ds
}
