package dto

import (
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name        string              `json:"name" binding:"required"`
	Type        domain.CategoryType `json:"type" binding:"required,oneof=income expense"`
	IsRecurring bool                `json:"isRecurring"`
	ParentID    *string             `json:"parentID"`
	Icon        string              `json:"icon"`
	Color       string              `json:"color"`
}

// UpdateCategoryRequest defines the fields that may change on a category.
// Pointers distinguish "not provided" from zero values.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	IsRecurring *bool   `json:"isRecurring"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string              `json:"categoryID"`
	Name        string              `json:"name"`
	Type        domain.CategoryType `json:"type"`
	IsRecurring bool                `json:"isRecurring"`
	ParentID    string              `json:"parentID,omitempty"`
	Icon        string              `json:"icon,omitempty"`
	Color       string              `json:"color,omitempty"`
	IsActive    bool                `json:"isActive"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Type:        c.Type,
		IsRecurring: c.IsRecurring,
		ParentID:    c.ParentID,
		Icon:        c.Icon,
		Color:       c.Color,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
