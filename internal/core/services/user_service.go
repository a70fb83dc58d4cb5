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
	"github.com/famstack/family_budget_app/internal/middleware"
	"github.com/famstack/family_budget_app/internal/utils"
)

// userService manages household members.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
	auditSvc portssvc.AuditSvcFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, auditSvc: auditSvc}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

// GetUserByEmail retrieves a user by email address.
func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// ListUsers retrieves all users. Owner only.
func (s *userService) ListUsers(ctx context.Context, actor domain.Actor) ([]domain.User, error) {
	if !actor.IsOwner() {
		return nil, fmt.Errorf("%w: only the owner can list users", apperrors.ErrForbidden)
	}
	return s.userRepo.ListUsers(ctx)
}

// HouseholdMembers retrieves all users without an access check, for derived
// views like salaries that any member may see.
func (s *userService) HouseholdMembers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// CreateUser adds a household member. Owner only.
func (s *userService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	if !actor.IsOwner() {
		return nil, fmt.Errorf("%w: only the owner can create users", apperrors.ErrForbidden)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for new user: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Role:         req.Role,
		IsActive:     true,
		PasswordHash: hash,
		AuditFields:  domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "user", user.UserID, map[string]any{
		"email": user.Email,
		"role":  string(user.Role),
	})

	return &user, nil
}

// EnsureDefaultUsers seeds the three household users into an empty store.
// Idempotent: any existing user means the household is already set up.
func (s *userService) EnsureDefaultUsers(ctx context.Context, defaultPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users during bootstrap: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(defaultPassword)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	defaults := []struct {
		email string
		name  string
		role  domain.UserRole
	}{
		{"harish@budget.app", "Harish", domain.RoleOwner},
		{"spouse@budget.app", "Spouse", domain.RoleCoowner},
		{"guest@budget.app", "Guest", domain.RoleGuest},
	}

	now := time.Now()
	for _, d := range defaults {
		user := domain.User{
			UserID:       uuid.NewString(),
			Email:        d.email,
			Name:         d.name,
			Role:         d.role,
			IsActive:     true,
			PasswordHash: hash,
			AuditFields:  domain.NewAuditFields("system", now),
		}
		if err := s.userRepo.SaveUser(ctx, user); err != nil {
			return fmt.Errorf("failed to seed default user %s: %w", d.email, err)
		}
	}

	logger.Info("Created default household users", "emails", []string{defaults[0].email, defaults[1].email, defaults[2].email})
	return nil
}
