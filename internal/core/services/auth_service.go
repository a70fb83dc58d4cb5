package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/middleware"
	"github.com/famstack/family_budget_app/internal/utils"
)

// authService handles credential verification and password changes.
type authService struct {
	userRepo portsrepo.UserRepositoryFacade
	tokenSvc portssvc.TokenSvcFacade
	auditSvc portssvc.AuditSvcFacade
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, tokenSvc portssvc.TokenSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.AuthSvcFacade {
	return &authService{
		userRepo: userRepo,
		tokenSvc: tokenSvc,
		auditSvc: auditSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies email/password and returns the user with a fresh token.
// A missing user and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", time.Time{}, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		return nil, "", time.Time{}, fmt.Errorf("failed to look up user for login: %w", err)
	}
	if !user.IsActive {
		logger.Warn("Login attempt for inactive user", "user_id", user.UserID)
		return nil, "", time.Time{}, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		logger.Warn("Login attempt with wrong password", "user_id", user.UserID)
		return nil, "", time.Time{}, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := s.tokenSvc.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.auditSvc.Record(ctx, user.UserID, domain.AuditLogin, "user", user.UserID, nil)

	return user, token, expiresAt, nil
}

// ChangePassword verifies the current password and stores a new hash.
func (s *authService) ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return fmt.Errorf("failed to look up user for password change: %w", err)
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return fmt.Errorf("%w: current password is incorrect", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.UserID, hash, actor.UserID, time.Now()); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "user", user.UserID, map[string]any{"field": "password"})
	return nil
}
