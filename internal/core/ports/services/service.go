package services

// ServiceContainer bundles every service facade for injection into the
// HTTP layer.
type ServiceContainer struct {
	AuthSvc        AuthSvcFacade
	TokenSvc       TokenSvcFacade
	GoogleOAuthSvc GoogleOAuthSvcFacade
	UserSvc        UserSvcFacade
	CategorySvc    CategorySvcFacade
	AccountSvc     AccountSvcFacade
	TransactionSvc TransactionSvcFacade
	SalarySvc      SalarySvcFacade
	BillSvc        BillSvcFacade
	BudgetSvc      BudgetSvcFacade
	PurchaseSvc    PurchaseSvcFacade
	CalendarSvc    CalendarSvcFacade
	EventSvc       EventSvcFacade
	ReminderSvc    ReminderSvcFacade
	ScheduleSvc    ScheduleSvcFacade
	DashboardSvc   DashboardSvcFacade
	PreferencesSvc PreferencesSvcFacade
	AuditSvc       AuditSvcFacade
}
