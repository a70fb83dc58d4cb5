package mapping

import (
	"encoding/json"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/models"
)

// ToModelAuditLog converts a domain AuditLog to a model row, marshalling the
// change set to JSON for the jsonb column.
func ToModelAuditLog(d domain.AuditLog) (models.AuditLog, error) {
	var changes []byte
	if d.Changes != nil {
		var err error
		changes, err = json.Marshal(d.Changes)
		if err != nil {
			return models.AuditLog{}, err
		}
	}
	return models.AuditLog{
		AuditID:   d.AuditID,
		UserID:    d.UserID,
		Action:    d.Action,
		Entity:    d.Entity,
		EntityID:  d.EntityID,
		Changes:   changes,
		Timestamp: d.Timestamp,
	}, nil
}

// ToDomainAuditLog converts a model row to a domain AuditLog. A malformed
// change payload is surfaced as a nil map rather than an error; the audit
// trail stays readable even if one row is corrupt.
func ToDomainAuditLog(m models.AuditLog) domain.AuditLog {
	d := domain.AuditLog{
		AuditID:   m.AuditID,
		UserID:    m.UserID,
		Action:    m.Action,
		Entity:    m.Entity,
		EntityID:  m.EntityID,
		Timestamp: m.Timestamp,
	}
	if len(m.Changes) > 0 {
		_ = json.Unmarshal(m.Changes, &d.Changes)
	}
	return d
}

// ToDomainAuditLogSlice converts a slice of model rows to domain AuditLogs
func ToDomainAuditLogSlice(ms []models.AuditLog) []domain.AuditLog {
	ds := make([]domain.AuditLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditLog(m)
	}
	return ds
}
