package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// billService manages recurring bill definitions.
type billService struct {
	billRepo     portsrepo.BillRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewBillService creates a new instance of billService.
func NewBillService(
	billRepo portsrepo.BillRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.BillSvcFacade {
	return &billService{
		billRepo:     billRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		auditSvc:     auditSvc,
	}
}

var _ portssvc.BillSvcFacade = (*billService)(nil)

// CreateBill creates a new recurring bill.
func (s *billService) CreateBill(ctx context.Context, actor domain.Actor, req dto.CreateBillRequest) (*domain.Bill, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot create bills", apperrors.ErrForbidden)
	}
	if req.ExpectedAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expected amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}
	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}

	now := time.Now()
	bill := domain.Bill{
		BillID:         uuid.NewString(),
		Name:           req.Name,
		Provider:       req.Provider,
		CategoryID:     req.CategoryID,
		AccountID:      req.AccountID,
		Recurrence:     req.Recurrence,
		DueDay:         req.DueDay,
		ExpectedAmount: req.ExpectedAmount,
		Autopay:        req.Autopay,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "bill", bill.BillID, map[string]any{
		"name":    bill.Name,
		"due_day": bill.DueDay,
	})

	return &bill, nil
}

// GetBillByID retrieves a bill.
func (s *billService) GetBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	return s.billRepo.FindBillByID(ctx, billID)
}

// ListBills retrieves bills ordered by due day.
func (s *billService) ListBills(ctx context.Context, activeOnly bool) ([]domain.Bill, error) {
	return s.billRepo.ListBills(ctx, activeOnly)
}

// UpdateBill applies partial changes to a bill. Already-generated calendar
// events are not rewritten.
func (s *billService) UpdateBill(ctx context.Context, actor domain.Actor, billID string, req dto.UpdateBillRequest) (*domain.Bill, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot update bills", apperrors.ErrForbidden)
	}

	bill, err := s.billRepo.FindBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		bill.Name = *req.Name
	}
	if req.Provider != nil {
		bill.Provider = *req.Provider
	}
	if req.DueDay != nil {
		bill.DueDay = *req.DueDay
	}
	if req.ExpectedAmount != nil {
		if req.ExpectedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expected amount must be positive", apperrors.ErrValidation)
		}
		bill.ExpectedAmount = *req.ExpectedAmount
	}
	if req.Autopay != nil {
		bill.Autopay = *req.Autopay
	}
	if req.IsActive != nil {
		bill.IsActive = *req.IsActive
	}
	bill.Touch(actor.UserID, time.Now())

	if err := s.billRepo.UpdateBill(ctx, *bill); err != nil {
		return nil, fmt.Errorf("failed to update bill %s: %w", billID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "bill", billID, nil)

	return bill, nil
}

// DeleteBill removes a bill definition.
func (s *billService) DeleteBill(ctx context.Context, actor domain.Actor, billID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete bills", apperrors.ErrForbidden)
	}

	if _, err := s.billRepo.FindBillByID(ctx, billID); err != nil {
		return err
	}
	if err := s.billRepo.DeleteBill(ctx, billID); err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "bill", billID, nil)
	return nil
}
