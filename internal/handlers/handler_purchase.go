package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// purchaseHandler handles HTTP requests related to planned purchases.
type purchaseHandler struct {
	purchaseSvc portssvc.PurchaseSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(purchaseSvc portssvc.PurchaseSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseSvc: purchaseSvc}
}

// registerPurchaseRoutes registers routes related to planned purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseSvc portssvc.PurchaseSvcFacade) {
	h := newPurchaseHandler(purchaseSvc)

	purchases := rg.Group("/planned-purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
		purchases.GET("/:id", h.getPurchase)
		purchases.POST("/:id/installments/:index/pay", h.payInstallment)
		purchases.DELETE("/:id", h.deletePurchase)
	}
}

// createPurchase godoc
// @Summary Plan a purchase
// @Description Plans a purchase split into installments that sum exactly to the total.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Guests cannot plan purchases"
// @Security BearerAuth
// @Router /planned-purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreatePurchaseRequest
	if !bindJSON(c, &req) {
		return
	}

	purchase, err := h.purchaseSvc.CreatePurchase(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to plan purchase")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseResponse(purchase))
}

// listPurchases godoc
// @Summary List planned purchases
// @Tags purchases
// @Produce json
// @Success 200 {object} dto.ListPurchasesResponse
// @Security BearerAuth
// @Router /planned-purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	purchases, err := h.purchaseSvc.ListPurchases(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list purchases")
		return
	}

	res := make([]dto.PurchaseResponse, len(purchases))
	for i := range purchases {
		res[i] = dto.ToPurchaseResponse(&purchases[i])
	}
	c.JSON(http.StatusOK, dto.ListPurchasesResponse{Purchases: res})
}

// getPurchase godoc
// @Summary Get a planned purchase
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /planned-purchases/{id} [get]
func (h *purchaseHandler) getPurchase(c *gin.Context) {
	purchase, err := h.purchaseSvc.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve purchase")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// payInstallment godoc
// @Summary Pay an installment
// @Description Records the expense transaction for one installment and marks it paid.
// @Tags purchases
// @Produce json
// @Param id path string true "Purchase ID"
// @Param index path int true "Installment index (0-based)"
// @Success 200 {object} dto.PurchaseResponse
// @Failure 400 {object} ErrorResponse "Index out of range or installment already paid"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /planned-purchases/{id}/installments/{index}/pay [post]
func (h *purchaseHandler) payInstallment(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Installment index must be an integer"})
		return
	}

	purchase, err := h.purchaseSvc.PayInstallment(c.Request.Context(), actor, c.Param("id"), index)
	if err != nil {
		respondServiceError(c, err, "Failed to pay installment")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseResponse(purchase))
}

// deletePurchase godoc
// @Summary Delete a planned purchase
// @Description Removes a planned purchase; transactions for paid installments stay in the ledger.
// @Tags purchases
// @Param id path string true "Purchase ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /planned-purchases/{id} [delete]
func (h *purchaseHandler) deletePurchase(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.purchaseSvc.DeletePurchase(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete purchase")
		return
	}
	c.Status(http.StatusNoContent)
}
