package repositories

import (
	"context"
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// CategoryReader defines read operations for category data.
type CategoryReader interface {
	// FindCategoryByID retrieves a category by its unique identifier.
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves categories; inactive ones only when includeInactive is set.
	ListCategories(ctx context.Context, includeInactive bool) ([]domain.Category, error)

	// FindIncomeCategoriesNameContains retrieves active income categories whose
	// name contains the given substring, case-insensitively.
	FindIncomeCategoriesNameContains(ctx context.Context, substring string) ([]domain.Category, error)
}

// CategoryWriter defines write operations for category data.
type CategoryWriter interface {
	// SaveCategory persists a new category.
	SaveCategory(ctx context.Context, category domain.Category) error

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, category domain.Category) error

	// DeactivateCategory soft-deletes a category.
	DeactivateCategory(ctx context.Context, categoryID string, userID string, now time.Time) error
}

// CategoryRepositoryFacade combines all category-related repository interfaces.
type CategoryRepositoryFacade interface {
	CategoryReader
	CategoryWriter
}
