package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// billHandler handles HTTP requests related to recurring bills.
type billHandler struct {
	billSvc portssvc.BillSvcFacade
}

// newBillHandler creates a new billHandler.
func newBillHandler(billSvc portssvc.BillSvcFacade) *billHandler {
	return &billHandler{billSvc: billSvc}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billSvc portssvc.BillSvcFacade) {
	h := newBillHandler(billSvc)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/:id", h.getBill)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", h.deleteBill)
	}
}

// createBill godoc
// @Summary Create a bill
// @Description Creates a recurring bill definition.
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Guests cannot create bills"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billSvc.CreateBill(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create bill")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Description Lists bills ordered by due day; pass active_only=true to hide inactive ones.
// @Tags bills
// @Produce json
// @Param active_only query bool false "Only active bills"
// @Success 200 {object} dto.ListBillsResponse
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	bills, err := h.billSvc.ListBills(c.Request.Context(), activeOnly)
	if err != nil {
		respondServiceError(c, err, "Failed to list bills")
		return
	}

	res := make([]dto.BillResponse, len(bills))
	for i := range bills {
		res[i] = dto.ToBillResponse(&bills[i])
	}
	c.JSON(http.StatusOK, dto.ListBillsResponse{Bills: res})
}

// getBill godoc
// @Summary Get a bill
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	bill, err := h.billSvc.GetBillByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// updateBill godoc
// @Summary Update a bill
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param bill body dto.UpdateBillRequest true "Fields to change"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.UpdateBillRequest
	if !bindJSON(c, &req) {
		return
	}

	bill, err := h.billSvc.UpdateBill(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update bill")
		return
	}
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill
// @Tags bills
// @Param id path string true "Bill ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.billSvc.DeleteBill(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete bill")
		return
	}
	c.Status(http.StatusNoContent)
}
