package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/famstack/family_budget_app/internal/core/ports/services"
	"github.com/famstack/family_budget_app/internal/dto"
)

// transactionHandler handles HTTP requests related to transactions and the
// derived salary figures.
type transactionHandler struct {
	transactionSvc portssvc.TransactionSvcFacade
	salarySvc      portssvc.SalarySvcFacade
	userSvc        portssvc.UserSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(transactionSvc portssvc.TransactionSvcFacade, salarySvc portssvc.SalarySvcFacade, userSvc portssvc.UserSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionSvc: transactionSvc,
		salarySvc:      salarySvc,
		userSvc:        userSvc,
	}
}

// registerTransactionRoutes registers routes related to transactions and salaries.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionSvc portssvc.TransactionSvcFacade, salarySvc portssvc.SalarySvcFacade, userSvc portssvc.UserSvcFacade) {
	h := newTransactionHandler(transactionSvc, salarySvc, userSvc)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:id", h.getTransaction)
		transactions.DELETE("/:id", h.deleteTransaction)
	}

	salaries := rg.Group("/salaries")
	{
		salaries.GET("", h.currentSalaries)
		salaries.PUT("", h.replaceSalary)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income, expense or transfer and adjusts account balances atomically.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Guests cannot record transactions"
// @Failure 404 {object} ErrorResponse "Account or category not found"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.transactionSvc.CreateTransaction(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to record transaction")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions newest first, optionally filtered by category, account and date range.
// @Tags transactions
// @Produce json
// @Param category_id query string false "Filter by category"
// @Param account_id query string false "Filter by account (source or destination)"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params) {
		return
	}

	txns, err := h.transactionSvc.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	txn, err := h.transactionSvc.GetTransactionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes a transaction and reverses its balance effects atomically.
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}

	if err := h.transactionSvc.DeleteTransaction(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete transaction")
		return
	}
	c.Status(http.StatusNoContent)
}

// currentSalaries godoc
// @Summary Current salaries
// @Description Returns each member's current salary, derived from their latest salary transaction.
// @Tags salaries
// @Produce json
// @Success 200 {object} dto.SalariesResponse
// @Security BearerAuth
// @Router /salaries [get]
func (h *transactionHandler) currentSalaries(c *gin.Context) {
	users, err := h.userSvc.HouseholdMembers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list users")
		return
	}
	salaries, err := h.salarySvc.CurrentSalaries(c.Request.Context(), users)
	if err != nil {
		respondServiceError(c, err, "Failed to compute salaries")
		return
	}
	c.JSON(http.StatusOK, dto.SalariesResponse{Salaries: salaries})
}

// replaceSalary godoc
// @Summary Replace the caller's salary
// @Description Swaps all of the caller's salary transactions for a single one dated the first of the current month.
// @Tags salaries
// @Accept json
// @Produce json
// @Param salary body dto.ReplaceSalaryRequest true "New salary"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No salary category for this user"
// @Security BearerAuth
// @Router /salaries [put]
func (h *transactionHandler) replaceSalary(c *gin.Context) {
	actor, ok := actorFromContext(c)
	if !ok {
		return
	}
	var req dto.ReplaceSalaryRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.salarySvc.ReplaceSalary(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to replace salary")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
