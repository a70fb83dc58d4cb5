package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/famstack/family_budget_app/internal/apperrors"
	"github.com/famstack/family_budget_app/internal/core/domain"
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
	"github.com/famstack/family_budget_app/internal/middleware"
)

// purchaseService manages planned purchases and installment payments.
type purchaseService struct {
	purchaseRepo portsrepo.PurchaseRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
	auditSvc     portssvc.AuditSvcFacade
}

// NewPurchaseService creates a new instance of purchaseService.
func NewPurchaseService(
	purchaseRepo portsrepo.PurchaseRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
) portssvc.PurchaseSvcFacade {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
		auditSvc:     auditSvc,
	}
}

var _ portssvc.PurchaseSvcFacade = (*purchaseService)(nil)

// CreatePurchase plans a purchase, splitting the total into installments that
// sum exactly to it.
func (s *purchaseService) CreatePurchase(ctx context.Context, actor domain.Actor, req dto.CreatePurchaseRequest) (*domain.PlannedPurchase, error) {
	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot plan purchases", apperrors.ErrForbidden)
	}
	if req.TotalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: total amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		return nil, fmt.Errorf("category lookup failed: %w", err)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}

	amounts := domain.SplitInstallments(req.TotalAmount, req.InstallmentCount)
	installments := make([]domain.Installment, len(amounts))
	for i, amount := range amounts {
		installments[i] = domain.Installment{Index: i, Amount: amount}
	}

	now := time.Now()
	purchase := domain.PlannedPurchase{
		PurchaseID:       uuid.NewString(),
		Name:             req.Name,
		CategoryID:       req.CategoryID,
		AccountID:        req.AccountID,
		TotalAmount:      req.TotalAmount,
		InstallmentCount: req.InstallmentCount,
		Installments:     installments,
		AuditFields:      domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.purchaseRepo.SavePurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to create planned purchase: %w", err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditCreate, "purchase", purchase.PurchaseID, map[string]any{
		"name":         purchase.Name,
		"total":        purchase.TotalAmount.String(),
		"installments": purchase.InstallmentCount,
	})

	return &purchase, nil
}

// GetPurchaseByID retrieves a planned purchase with its installments.
func (s *purchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PlannedPurchase, error) {
	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

// ListPurchases retrieves all planned purchases.
func (s *purchaseService) ListPurchases(ctx context.Context) ([]domain.PlannedPurchase, error) {
	return s.purchaseRepo.ListPurchases(ctx)
}

// PayInstallment records the expense transaction for one installment and
// marks it paid, atomically. The refreshed purchase is returned.
func (s *purchaseService) PayInstallment(ctx context.Context, actor domain.Actor, purchaseID string, index int) (*domain.PlannedPurchase, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot pay installments", apperrors.ErrForbidden)
	}

	purchase, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(purchase.Installments) {
		return nil, fmt.Errorf("%w: installment index %d out of range", apperrors.ErrValidation, index)
	}
	installment := purchase.Installments[index]
	if installment.Paid {
		return nil, fmt.Errorf("%w: installment %d is already paid", apperrors.ErrValidation, index)
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionExpense,
		AccountID:     purchase.AccountID,
		CategoryID:    purchase.CategoryID,
		Amount:        installment.Amount,
		Description:   fmt.Sprintf("%s - installment %d/%d", purchase.Name, index+1, purchase.InstallmentCount),
		Date:          now,
		AuditFields:   domain.NewAuditFields(actor.UserID, now),
	}
	effects, err := txn.BalanceEffects()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.purchaseRepo.MarkInstallmentPaid(ctx, purchaseID, index, txn, effects); err != nil {
		return nil, fmt.Errorf("failed to pay installment %d of purchase %s: %w", index, purchaseID, err)
	}

	logger.Info("Paid installment", "purchase_id", purchaseID, "index", index, "amount", installment.Amount.String())
	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "purchase", purchaseID, map[string]any{
		"installment": index,
		"amount":      installment.Amount.String(),
	})

	return s.purchaseRepo.FindPurchaseByID(ctx, purchaseID)
}

// DeletePurchase removes a planned purchase. Transactions already recorded
// for paid installments stay in the ledger.
func (s *purchaseService) DeletePurchase(ctx context.Context, actor domain.Actor, purchaseID string) error {
	if !actor.CanMutate() {
		return fmt.Errorf("%w: guests cannot delete purchases", apperrors.ErrForbidden)
	}

	if _, err := s.purchaseRepo.FindPurchaseByID(ctx, purchaseID); err != nil {
		return err
	}
	if err := s.purchaseRepo.DeletePurchase(ctx, purchaseID); err != nil {
		return fmt.Errorf("failed to delete purchase %s: %w", purchaseID, err)
	}

	s.auditSvc.Record(ctx, actor.UserID, domain.AuditDelete, "purchase", purchaseID, nil)
	return nil
}
