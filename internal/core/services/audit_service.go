package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/middleware"
)

// auditService appends to and reads the audit trail.
type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new instance of auditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends an audit entry. A failed append is logged and swallowed:
// the mutation it describes has already happened and must not be rolled back
// over bookkeeping.
func (s *auditService) Record(ctx context.Context, userID, action, entity, entityID string, changes map[string]any) {
	entry := domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Changes:   changes,
		Timestamp: time.Now(),
	}
	if err := s.auditRepo.SaveAuditLog(ctx, entry); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to record audit entry",
			"action", action, "entity", entity, "entity_id", entityID, "error", err.Error())
	}
}

// ListAuditLogs returns audit entries newest first. Owner only.
func (s *auditService) ListAuditLogs(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.AuditLog, error) {
	if !actor.IsOwner() {
		return nil, fmt.Errorf("%w: only the owner can view audit logs", apperrors.ErrForbidden)
	}
	return s.auditRepo.ListAuditLogs(ctx, limit, offset)
}
