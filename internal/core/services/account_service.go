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
)

// accountService manages financial accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewAccountService creates a new instance of accountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, auditSvc: auditSvc}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account. The current balance starts at the
// opening balance.
func (s *accountService) CreateAccount(ctx context.Context, actor domain.Actor, req dto.CreateAccountRequest) (*domain.Account, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot create accounts", apperrors.ErrForbidden)
	}

	currency := req.Currency
	if currency == "" {
		currency = "EUR"
	}

	now := time.Now()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		Currency:       currency,
		OpeningBalance: req.OpeningBalance,
		CurrentBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "account", account.AccountID, map[string]any{
		"name": account.Name,
		"type": string(account.Type),
	})

	return &account, nil
}

// GetAccountByID retrieves an account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccounts retrieves accounts.
func (s *accountService) ListAccounts(ctx context.Context, includeInactive bool) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx, includeInactive)
}

// UpdateAccount applies partial changes to an account. Balances are never
// edited directly; they only move with transactions.
func (s *accountService) UpdateAccount(ctx context.Context, actor domain.Actor, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot update accounts", apperrors.ErrForbidden)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.Touch(actor.UserID, time.Now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, fmt.Errorf("failed to update account %s: %w", accountID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "account", accountID, nil)

	return account, nil
}

// DeactivateAccount marks an account as inactive.
func (s *accountService) DeactivateAccount(ctx context.Context, actor domain.Actor, accountID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete accounts", apperrors.ErrForbidden)
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, actor.UserID, time.Now()); err != nil {
		return err
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "account", accountID, nil)
	return nil
}
