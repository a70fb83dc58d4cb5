package services

import (
	"context"
	"time"

	"github.com/famstack/family_budget_app/internal/core/domain"
)

// TokenSvcFacade issues application bearer tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the user's id, email
	// and role, returning the token and its expiry instant.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// AuthSvcFacade handles credential verification and password management.
type AuthSvcFacade interface {
	// Login verifies email/password and returns the user with a fresh token.
	Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error)

	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, actor domain.Actor, currentPassword, newPassword string) error
}

// GoogleOAuthSvcFacade exchanges a Google authorization code for a verified
// email, enabling sign-in for existing household members.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForEmail swaps the code for tokens and returns the verified
	// email from the ID token.
	ExchangeCodeForEmail(ctx context.Context, code string) (string, error)
}
