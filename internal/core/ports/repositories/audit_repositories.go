package repositories

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// AuditRepositoryFacade defines append and list operations for the audit log.
type AuditRepositoryFacade interface {
	// SaveAuditLog appends an audit record.
	SaveAuditLog(ctx context.Context, entry domain.AuditLog) error

	// ListAuditLogs retrieves audit records newest first.
	ListAuditLogs(ctx context.Context, limit, offset int) ([]domain.AuditLog, error)
}
