package domain

// CategoryType classifies a category as money in or money out.
type CategoryType string

const (
	CategoryIncome  CategoryType = "income"
	CategoryExpense CategoryType = "expense"
)

// Category groups transactions. Inactive categories are soft-deleted: they
// stay referenced by historical transactions but are hidden from listings.
type Category struct {
	CategoryID  string       `json:"categoryID"`
	Name        string       `json:"name"`
	Type        CategoryType `json:"type"`
	IsRecurring bool         `json:"isRecurring"`
	ParentID    string       `json:"parentID,omitempty"`
	Icon        string       `json:"icon,omitempty"`
	Color       string       `json:"color,omitempty"`
	IsActive    bool         `json:"isActive"`
	AuditFields
}
