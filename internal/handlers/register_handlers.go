package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/famstack/family_budget_app/cmd/docs"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/middleware"
	"github.com/famstack/family_budget_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Authenticated API
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (not in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAuthenticatedAuthRoutes(v1, services)
	registerUserRoutes(v1, services.UserSvc)
	registerCategoryRoutes(v1, services.CategorySvc)
	registerAccountRoutes(v1, services.AccountSvc)
	registerTransactionRoutes(v1, services.TransactionSvc, services.SalarySvc, services.UserSvc)
	registerBillRoutes(v1, services.BillSvc)
	registerBudgetRoutes(v1, services.BudgetSvc)
	registerPurchaseRoutes(v1, services.PurchaseSvc)
	registerCalendarRoutes(v1, services.CalendarSvc, services.EventSvc, services.ReminderSvc)
	registerScheduleRoutes(v1, services.ScheduleSvc)
	registerReportingRoutes(v1, services.DashboardSvc, services.AuditSvc, services.PreferencesSvc)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
