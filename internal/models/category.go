package models

// CategoryType mirrors domain.CategoryType at the storage layer.
type CategoryType string

// Category represents a transaction category row.
type Category struct {
	CategoryID  string       `db:"category_id"`
	Name        string       `db:"name"`
	Type        CategoryType `db:"type"`
	IsRecurring bool         `db:"is_recurring"`
	ParentID    string       `db:"parent_id"` // nullable
	Icon        string       `db:"icon"`
	Color       string       `db:"color"`
	IsActive    bool         `db:"is_active"`
	AuditFields
}
