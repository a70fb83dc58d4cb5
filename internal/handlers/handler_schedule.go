package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/famstack/family_budget_app/internal/apperrors"
	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
	"github.com/famstack/family_budget_app/internal/middleware"
)

// scheduleHandler handles bill event generation and the agenda view.
type scheduleHandler struct {
	scheduleSvc portssvc.ScheduleSvcFacade
}

// newScheduleHandler creates a new scheduleHandler.
func newScheduleHandler(scheduleSvc portssvc.ScheduleSvcFacade) *scheduleHandler {
	return &scheduleHandler{scheduleSvc: scheduleSvc}
}

// registerScheduleRoutes registers the schedule projection routes.
func registerScheduleRoutes(rg *gin.RouterGroup, scheduleSvc portssvc.ScheduleSvcFacade) {
	h := newScheduleHandler(scheduleSvc)

	rg.POST("/calendar/generate-bill-events", h.generateBillEvents)
	rg.GET("/calendar/agenda", h.agenda)
}

// generateBillEvents godoc
// @Summary Generate bill calendar events
// @Description Creates an event plus default reminder for every active bill that has none yet. Safe to call repeatedly.
// @Tags schedule
// @Produce json
// @Success 200 {object} map[string]int "generated: number of bills that got events"
// @Failure 403 {object} ErrorResponse "Guests cannot trigger generation"
// @Security BearerAuth
// @Router /calendar/generate-bill-events [post]
func (h *scheduleHandler) generateBillEvents(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	if !actor.CanMutate() {
		respondServiceError(c, apperrors.ErrForbidden, "Failed to generate bill events")
		return
	}

	generated, err := h.scheduleSvc.GenerateBillEvents(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to generate bill events")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Bill event generation requested", "generated", generated)
	c.JSON(http.StatusOK, gin.H{"generated": generated})
}

// agenda godoc
// @Summary Agenda
// @Description Returns the caller's readable events and bill due-date projections within the horizon.
// @Tags schedule
// @Produce json
// @Param days query int false "Horizon in days" default(7)
// @Success 200 {object} dto.AgendaResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /calendar/agenda [get]
func (h *scheduleHandler) agenda(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var params dto.AgendaParams
	if !bindQuery(c, &params) {
		return
	}

	agenda, err := h.scheduleSvc.Agenda(c.Request.Context(), actor, params.Days)
	if err != nil {
		respondServiceError(c, err, "Failed to build agenda")
		return
	}
	c.JSON(http.StatusOK, dto.ToAgendaResponse(agenda))
}
