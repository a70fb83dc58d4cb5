package pgsql

import (
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        newPgxUserRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		BillRepo:        newPgxBillRepository(dbPool),
		BudgetRepo:      newPgxBudgetRepository(dbPool),
		CalendarRepo:    newPgxCalendarRepository(dbPool),
		EventRepo:       newPgxEventRepository(dbPool),
		ReminderRepo:    newPgxReminderRepository(dbPool),
		PurchaseRepo:    newPgxPurchaseRepository(dbPool),
		PreferencesRepo: newPgxPreferencesRepository(dbPool),
		AuditRepo:       newPgxAuditRepository(dbPool),
	}
}
