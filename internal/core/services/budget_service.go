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

// budgetService manages per-category monthly budgets.
type budgetService struct {
	budgetRepo   portsrepo.BudgetRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewBudgetService creates a new instance of budgetService.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, categoryRepo portsrepo.CategoryRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: budgetRepo, categoryRepo: categoryRepo, auditSvc: auditSvc}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CreateBudget creates a budget for a category and month.
func (s *budgetService) CreateBudget(ctx context.Context, actor domain.Actor, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot create budgets", apperrors.ErrForbidden)
	}
	if req.LimitAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: limit amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:    uuid.NewString(),
		CategoryID:  req.CategoryID,
		Month:       req.Month,
		Year:        req.Year,
		LimitAmount: req.LimitAmount,
		SpentAmount: decimal.Zero,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "budget", budget.BudgetID, map[string]any{
		"category_id": budget.CategoryID,
		"month":       budget.Month,
		"year":        budget.Year,
	})

	return &budget, nil
}

// ListBudgets retrieves budgets, optionally narrowed to a month and/or year.
func (s *budgetService) ListBudgets(ctx context.Context, params dto.ListBudgetsParams) ([]domain.Budget, error) {
	return s.budgetRepo.ListBudgets(ctx, params.Month, params.Year)
}

// UpdateBudget applies partial changes to a budget.
func (s *budgetService) UpdateBudget(ctx context.Context, actor domain.Actor, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot update budgets", apperrors.ErrForbidden)
	}

	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	if req.LimitAmount != nil {
		if req.LimitAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: limit amount must be positive", apperrors.ErrValidation)
		}
		budget.LimitAmount = *req.LimitAmount
	}
	if req.SpentAmount != nil {
		if req.SpentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: spent amount cannot be negative", apperrors.ErrValidation)
		}
		budget.SpentAmount = *req.SpentAmount
	}
	budget.Touch(actor.UserID, time.Now())

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		return nil, fmt.Errorf("failed to update budget %s: %w", budgetID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "budget", budgetID, nil)

	return budget, nil
}

// DeleteBudget removes a budget.
func (s *budgetService) DeleteBudget(ctx context.Context, actor domain.Actor, budgetID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete budgets", apperrors.ErrForbidden)
	}

	if _, err := s.budgetRepo.FindBudgetByID(ctx, budgetID); err != nil {
		return err
	}
	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		return fmt.Errorf("failed to delete budget %s: %w", budgetID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "budget", budgetID, nil)
	return nil
}
