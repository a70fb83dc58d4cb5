package models

// UserRole mirrors domain.UserRole at the storage layer.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleCoowner UserRole = "coowner"
	RoleGuest   UserRole = "guest"
)

// User represents a household member row.
type User struct {
	UserID       string   `db:"user_id"`
	Email        string   `db:"email"`
	Name         string   `db:"name"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
	PasswordHash string   `db:"password_hash"`
	AuditFields
}
