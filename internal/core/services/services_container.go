package services

import (
	portsrepo "github.com/famstack/family_budget_app/internal/core/ports/repositories"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/platform/config"
)

// NewServiceContainer wires every service with its dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	auditSvc := NewAuditService(repos.AuditRepo)
	tokenSvc := NewTokenService(cfg)
	googleOAuthSvc := NewGoogleOAuthService(cfg)
	authSvc := NewAuthService(repos.UserRepo, tokenSvc, auditSvc)
	userSvc := NewUserService(repos.UserRepo, auditSvc)

	categorySvc := NewCategoryService(repos.CategoryRepo, auditSvc)
	accountSvc := NewAccountService(repos.AccountRepo, auditSvc)
	transactionSvc := NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, auditSvc)
	salarySvc := NewSalaryService(repos.TransactionRepo, repos.CategoryRepo, repos.AccountRepo, repos.UserRepo, auditSvc, cfg.ScheduleTimezone)

	billSvc := NewBillService(repos.BillRepo, repos.CategoryRepo, repos.AccountRepo, auditSvc)
	budgetSvc := NewBudgetService(repos.BudgetRepo, repos.CategoryRepo, auditSvc)
	purchaseSvc := NewPurchaseService(repos.PurchaseRepo, repos.CategoryRepo, repos.AccountRepo, auditSvc)

	calendarSvc := NewCalendarService(repos.CalendarRepo, auditSvc)
	eventSvc := NewEventService(repos.EventRepo, repos.CalendarRepo, auditSvc)
	reminderSvc := NewReminderService(repos.ReminderRepo, repos.EventRepo, repos.CalendarRepo, auditSvc)
	scheduleSvc := NewScheduleService(repos.BillRepo, repos.EventRepo, calendarSvc, cfg.ScheduleTimezone)

	dashboardSvc := NewDashboardService(repos.TransactionRepo, repos.BillRepo, repos.CategoryRepo, repos.UserRepo, salarySvc, cfg.ScheduleTimezone)
	preferencesSvc := NewPreferencesService(repos.PreferencesRepo)

	return &portssvc.ServiceContainer{
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		GoogleOAuthSvc: googleOAuthSvc,
		UserSvc:        userSvc,
		CategorySvc:    categorySvc,
		AccountSvc:     accountSvc,
		TransactionSvc: transactionSvc,
		SalarySvc:      salarySvc,
		BillSvc:        billSvc,
		BudgetSvc:      budgetSvc,
		PurchaseSvc:    purchaseSvc,
		CalendarSvc:    calendarSvc,
		EventSvc:       eventSvc,
		ReminderSvc:    reminderSvc,
		ScheduleSvc:    scheduleSvc,
		DashboardSvc:   dashboardSvc,
		PreferencesSvc: preferencesSvc,
		AuditSvc:       auditSvc,
	}
}
