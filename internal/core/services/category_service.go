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
	"github.com/famstack/family_budget_app/internal/dto"
)

// categoryService manages transaction categories.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewCategoryService creates a new instance of categoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, auditSvc: auditSvc}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new category. Guests cannot.
func (s *categoryService) CreateCategory(ctx context.Context, actor domain.Actor, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot create categories", apperrors.ErrForbidden)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		IsRecurring: req.IsRecurring,
		Icon:        req.Icon,
		Color:       req.Color,
		IsActive:    true,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}
	if req.ParentID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.ParentID); err != nil {
			return nil, fmt.Errorf("parent category lookup failed: %w", err)
		}
		category.ParentID = *req.ParentID
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "category", category.CategoryID, map[string]any{
		"name": category.Name,
		"type": string(category.Type),
	})

	return &category, nil
}

// GetCategoryByID retrieves a category.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// ListCategories retrieves categories.
func (s *categoryService) ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, includeInactive)
}

// UpdateCategory applies partial changes to a category.
func (s *categoryService) UpdateCategory(ctx context.Context, actor domain.Actor, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot update categories", apperrors.ErrForbidden)
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IsRecurring != nil {
		category.IsRecurring = *req.IsRecurring
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.Touch(actor.UserID, time.Now())

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", categoryID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "category", categoryID, nil)

	return category, nil
}

// DeactivateCategory soft-deletes a category. Historical transactions keep
// referencing it.
func (s *categoryService) DeactivateCategory(ctx context.Context, actor domain.Actor, categoryID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete categories", apperrors.ErrForbidden)
	}

	if err := s.categoryRepo.DeactivateCategory(ctx, categoryID, actor.UserID, time.Now()); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "category", categoryID, nil)
	return nil
}
