package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// reportingHandler serves the dashboard, audit logs and user preferences.
type reportingHandler struct {
	dashboardSvc   portssvc.DashboardSvcFacade
	auditSvc       portssvc.AuditSvcFacade
	preferencesSvc portssvc.PreferencesSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(dashboardSvc portssvc.DashboardSvcFacade, auditSvc portssvc.AuditSvcFacade, preferencesSvc portssvc.PreferencesSvcFacade) *reportingHandler {
	return &reportingHandler{
		dashboardSvc:   dashboardSvc,
		auditSvc:       auditSvc,
		preferencesSvc: preferencesSvc,
	}
}

// registerReportingRoutes registers dashboard, audit and preferences routes.
func registerReportingRoutes(rg *gin.RouterGroup, dashboardSvc portssvc.DashboardSvcFacade, auditSvc portssvc.AuditSvcFacade, preferencesSvc portssvc.PreferencesSvcFacade) {
	h := newReportingHandler(dashboardSvc, auditSvc, preferencesSvc)

	rg.GET("/dashboard/stats", h.dashboard)
	rg.GET("/audit-logs", h.listAuditLogs)

	preferences := rg.Group("/preferences")
	{
		preferences.GET("", h.getPreferences)
		preferences.PUT("", h.updatePreferences)
	}
}

// dashboard godoc
// @Summary Dashboard statistics
// @Description Aggregates salaries, the month's expenses, category breakdown, upcoming bills and recent transactions.
// @Tags reporting
// @Produce json
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *reportingHandler) dashboard(c *gin.Context) {
	var params dto.DashboardParams
	if !bindQuery(c, &params) {
		return
	}

	stats, err := h.dashboardSvc.Stats(c.Request.Context(), params.Month, params.Year)
	if err != nil {
		respondServiceError(c, err, "Failed to compute dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// listAuditLogs godoc
// @Summary List audit logs
// @Description Returns the audit trail newest first. Owner only.
// @Tags reporting
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAuditLogsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *reportingHandler) listAuditLogs(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.ListAuditLogsParams
	if !bindQuery(c, &params) {
		return
	}

	logs, err := h.auditSvc.ListAuditLogs(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondServiceError(c, err, "Failed to list audit logs")
		return
	}

	res := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		res[i] = dto.ToAuditLogResponse(&logs[i])
	}
	c.JSON(http.StatusOK, dto.ListAuditLogsResponse{AuditLogs: res})
}

// getPreferences godoc
// @Summary Get preferences
// @Description Returns the caller's preferences, creating defaults on first access.
// @Tags preferences
// @Produce json
// @Success 200 {object} dto.PreferencesResponse
// @Security BearerAuth
// @Router /preferences [get]
func (h *reportingHandler) getPreferences(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	prefs, err := h.preferencesSvc.GetPreferences(c.Request.Context(), actor)
	if err != nil {
		respondServiceError(c, err, "Failed to load preferences")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body dto.UpdatePreferencesRequest true "Fields to change"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} ErrorResponse "Unknown timezone"
// @Security BearerAuth
// @Router /preferences [put]
func (h *reportingHandler) updatePreferences(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}

	prefs, err := h.preferencesSvc.UpdatePreferences(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to update preferences")
		return
	}
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
