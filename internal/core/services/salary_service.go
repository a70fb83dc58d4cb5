package services

import (
	"context"
	"fmt"
	"sort"
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

// coownerAlias also matches a coowner's salary category when the category was
// named after the household role rather than the person.
const coownerAlias = "spouse"

// salaryService derives "current salary" figures from the ledger instead of
// storing them. A user's salary is the amount of their latest income
// transaction in any of their salary categories.
type salaryService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	auditSvc        portssvc.AuditSvcFacade
	location        *time.Location
}

// NewSalaryService creates a new instance of salaryService. An unknown
// timezone name falls back to UTC.
func NewSalaryService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	userRepo portsrepo.UserRepositoryFacade,
	auditSvc portssvc.AuditSvcFacade,
	timezone string,
) portssvc.SalarySvcFacade {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		location = time.UTC
	}
	return &salaryService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
		userRepo:        userRepo,
		auditSvc:        auditSvc,
		location:        location,
	}
}

var _ portssvc.SalarySvcFacade = (*salaryService)(nil)

// salaryCategories returns the active income categories counting as the
// user's salary categories: name contains the user's name, plus the coowner
// alias for coowners. De-duplicated, name-matched categories first.
func (s *salaryService) salaryCategories(ctx context.Context, user domain.User) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FindIncomeCategoriesNameContains(ctx, user.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to find salary categories for %s: %w", user.UserID, err)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })

	if user.Role == domain.RoleCoowner {
		aliased, err := s.categoryRepo.FindIncomeCategoriesNameContains(ctx, coownerAlias)
		if err != nil {
			return nil, fmt.Errorf("failed to find salary categories for %s: %w", user.UserID, err)
		}
		sort.Slice(aliased, func(i, j int) bool { return aliased[i].Name < aliased[j].Name })

		seen := make(map[string]bool, len(categories))
		for _, c := range categories {
			seen[c.CategoryID] = true
		}
		for _, c := range aliased {
			if !seen[c.CategoryID] {
				categories = append(categories, c)
			}
		}
	}
	return categories, nil
}

// newerThan reports whether a was recorded after b, breaking ties by creation
// time and finally by id so the answer is stable.
func newerThan(a, b domain.Transaction) bool {
	if !a.Date.Equal(b.Date) {
		return a.Date.After(b.Date)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.TransactionID > b.TransactionID
}

// currentSalaryTxn returns the user's latest salary transaction, or nil when
// they have none.
func (s *salaryService) currentSalaryTxn(ctx context.Context, user domain.User) (*domain.Transaction, error) {
	categories, err := s.salaryCategories(ctx, user)
	if err != nil {
		return nil, err
	}

	var latest *domain.Transaction
	for _, category := range categories {
		txns, err := s.transactionRepo.ListByCategoryAndCreator(ctx, category.CategoryID, user.UserID, domain.TransactionIncome)
		if err != nil {
			return nil, fmt.Errorf("failed to list salary transactions in category %s: %w", category.CategoryID, err)
		}
		if len(txns) == 0 {
			continue
		}
		if latest == nil || newerThan(txns[0], *latest) {
			candidate := txns[0]
			latest = &candidate
		}
	}
	return latest, nil
}

// CurrentSalaries returns the current salary per user id for the owner and
// coowner users given. Users without a salary transaction are omitted.
func (s *salaryService) CurrentSalaries(ctx context.Context, users []domain.User) (map[string]decimal.Decimal, error) {
	salaries := make(map[string]decimal.Decimal, len(users))
	for _, user := range users {
		if user.Role == domain.RoleGuest {
			continue
		}
		txn, err := s.currentSalaryTxn(ctx, user)
		if err != nil {
			return nil, err
		}
		if txn != nil {
			salaries[user.UserID] = txn.Amount
		}
	}
	return salaries, nil
}

// ReplaceSalary swaps all of the caller's salary transactions in their salary
// category for a single new one dated the first of the current month. The
// deletions, the insert and the net balance adjustment commit together.
func (s *salaryService) ReplaceSalary(ctx context.Context, actor domain.Actor, req dto.ReplaceSalaryRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !actor.CanMutate() {
		return nil, fmt.Errorf("%w: guests cannot update salaries", apperrors.ErrForbidden)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: salary amount must be positive", apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
	}

	user, err := s.userRepo.FindUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user for salary replacement: %w", err)
	}
	categories, err := s.salaryCategories(ctx, *user)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no salary category found for user", apperrors.ErrNotFound)
	}
	category := categories[0]

	existing, err := s.transactionRepo.ListByCategoryAndCreator(ctx, category.CategoryID, actor.UserID, domain.TransactionIncome)
	if err != nil {
		return nil, fmt.Errorf("failed to list existing salary transactions: %w", err)
	}

	// "Current month" follows the household timezone, like the schedule and
	// dashboard, so the new salary lands in the month the dashboard filters on.
	now := time.Now().In(s.location)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	newTxn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Type:          domain.TransactionIncome,
		AccountID:     req.AccountID,
		CategoryID:    category.CategoryID,
		Amount:        req.Amount,
		Description:   "Monthly salary",
		Date:          firstOfMonth,
		IsRecurring:   true,
		AuditFields:   domain.NewAuditFields(actor.UserID, now),
	}

	effects, err := newTxn.BalanceEffects()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	deleteIDs := make([]string, 0, len(existing))
	for _, old := range existing {
		reversal, err := old.ReversalEffects()
		if err != nil {
			return nil, fmt.Errorf("failed to derive reversal for transaction %s: %w", old.TransactionID, err)
		}
		effects = domain.MergeEffects(effects, reversal)
		deleteIDs = append(deleteIDs, old.TransactionID)
	}

	if err := s.transactionRepo.ReplaceTransactions(ctx, deleteIDs, newTxn, effects); err != nil {
		return nil, fmt.Errorf("failed to replace salary transactions: %w", err)
	}

	logger.Info("Replaced salary", "user_id", actor.UserID, "category_id", category.CategoryID, "replaced", len(deleteIDs))
	s.auditSvc.Record(ctx, actor.UserID, domain.AuditUpdate, "salary", newTxn.TransactionID, map[string]any{
		"amount":   req.Amount.String(),
		"replaced": len(deleteIDs),
	})

	return &newTxn, nil
}
