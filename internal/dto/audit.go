package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// ListAuditLogsParams defines query parameters for listing audit logs.
type ListAuditLogsParams struct {
	Limit  int `form:"limit,default=100" binding:"omitempty,min=1,max=500"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// AuditLogResponse defines the data returned for an audit record.
type AuditLogResponse struct {
	AuditID   string         `json:"auditID"`
	UserID    string         `json:"userID"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  string         `json:"entityID"`
	Changes   map[string]any `json:"changes,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// ToAuditLogResponse converts a domain.AuditLog to AuditLogResponse.
func ToAuditLogResponse(a *domain.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		AuditID:   a.AuditID,
		UserID:    a.UserID,
		Action:    a.Action,
		Entity:    a.Entity,
		EntityID:  a.EntityID,
		Changes:   a.Changes,
		Timestamp: a.Timestamp,
	}
}

// ListAuditLogsResponse wraps the list of audit records.
type ListAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"auditLogs"`
}
