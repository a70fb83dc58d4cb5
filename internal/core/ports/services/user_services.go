package services

import (
	"context"

	"github.com/famstack/family_budget_app/internal/core/domain"
	"github.com/famstack/family_budget_app/internal/dto"
)

// UserSvcFacade manages household members.
type UserSvcFacade interface {
	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListUsers retrieves all users. Owner only.
	ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error)

	// HouseholdMembers retrieves all users without an access check, for
	// derived views like salaries that any member may see.
	HouseholdMembers(ctx context.Context) ([]domain.User, error)

	// CreateUser adds a household member. Owner only.
	CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error)

	// EnsureDefaultUsers seeds the three household users into an empty store.
	// Idempotent: does nothing when any user exists.
	EnsureDefaultUsers(ctx context.Context, defaultPassword string) error
}
