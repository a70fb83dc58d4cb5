package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	CategoryRepo    CategoryRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	BillRepo        BillRepositoryFacade
	BudgetRepo      BudgetRepositoryFacade
	CalendarRepo    CalendarRepositoryFacade
	EventRepo       EventRepositoryFacade
	ReminderRepo    ReminderRepositoryFacade
	PurchaseRepo    PurchaseRepositoryFacade
	PreferencesRepo PreferencesRepositoryFacade
	AuditRepo       AuditRepositoryFacade
}
