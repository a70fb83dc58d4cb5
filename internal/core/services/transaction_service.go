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
)

const dateLayout = "2006-01-02"

// transactionService records money movements and keeps account balances in
// step with them.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	auditSvc        portssvc.AuditSvcFacade
}

// NewTransactionService creates a new instance of transactionService.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		auditSvc:        auditSvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request, persists the transaction and
// applies its balance effects in one store transaction.
func (s *transactionService) CreateTransaction(ctx context.Context, actor domain.Actor, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot record transactions", apperrors.ErrForbidden)
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD form", apperrors.ErrValidation)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          req.Type,
		AccountID:     req.AccountID,
		ToAccountID:   req.ToAccountID,
		CategoryID:    req.CategoryID,
		Amount:        req.Amount,
		Description:   req.Description,
		Merchant:      req.Merchant,
		Date:          date,
		IsRecurring:   req.IsRecurring,
		Notes:         req.Notes,
		AuditFields:   domain.NewAuditFields(actor.UserID, now),
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.verifyAccounts(ctx, txn); err != nil {
		return nil, err
	}
	if txn.CategoryID != "" {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, txn.CategoryID); err != nil {
			return nil, fmt.Errorf("category lookup failed: %w", err)
		}
	}

	effects, err := txn.BalanceEffects()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, effects); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	logger.Info("Recorded transaction", "transaction_id", txn.TransactionID, "type", string(txn.Type), "amount", txn.Amount.String())
	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "transaction", txn.TransactionID, map[string]any{
		"type":   string(txn.Type),
		"amount": txn.Amount.String(),
	})

	return &txn, nil
}

// verifyAccounts confirms every account the transaction touches exists and
// is active.
func (s *transactionService) verifyAccounts(ctx context.Context, txn domain.Transaction) error {
	ids := []string{txn.AccountID}
	if txn.ToAccountID != "" {
		ids = append(ids, txn.ToAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("account lookup failed: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, id)
		}
		if !account.IsActive {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}

// GetTransactionByID retrieves a transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

// ListTransactions retrieves transactions matching the query parameters.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{
		CategoryID: params.CategoryID,
		AccountID:  params.AccountID,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	if params.StartDate != "" {
		start, err := time.Parse(dateLayout, params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start_date must be in YYYY-MM-DD form", apperrors.ErrValidation)
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := time.Parse(dateLayout, params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end_date must be in YYYY-MM-DD form", apperrors.ErrValidation)
		}
		filter.EndDate = &end
	}
	return s.transactionRepo.ListTransactions(ctx, filter)
}

// DeleteTransaction removes a transaction, reversing its recorded balance
// effects atomically. The reversal uses the stored row, never current
// category state.
func (s *transactionService) DeleteTransaction(ctx context.Context, actor domain.Actor, transactionID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete transactions", apperrors.ErrForbidden)
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	reversal, err := txn.ReversalEffects()
	if err != nil {
		return fmt.Errorf("failed to derive reversal for transaction %s: %w", transactionID, err)
	}

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, reversal, actor.UserID); err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "transaction", transactionID, map[string]any{
		"type":   string(txn.Type),
		"amount": txn.Amount.String(),
	})
	return nil
}
