package domain

// UserRole determines what a household member may do.
type UserRole string

const (
	RoleOwner   UserRole = "owner"
	RoleCoowner UserRole = "coowner"
	RoleGuest   UserRole = "guest"
)

// User represents a household member.
type User struct {
	UserID       string   `json:"userID"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	PasswordHash string   `json:"-"`
	AuditFields
}

// Actor is the authenticated caller as carried by the bearer token.
type Actor struct {
	UserID string
	Email  string
	Role   UserRole
}

// CanMutate reports whether the actor may create, update or delete entities.
// Guests are read-only everywhere.
func (a Actor) CanMutate() bool {
	return a.Role == RoleOwner || a.Role == RoleCoowner
}

// IsOwner reports whether the actor has the owner role.
func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}
