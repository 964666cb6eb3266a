package handlers

import (
	"log/slog"
	"net/http"

	"github.com/construtech/backoffice/internal/core/domain"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/construtech/backoffice/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the cash ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		reportingService:   rs,
	}
}

// registerTransactionRoutes registers routes related to the cash ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(ts, rs)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/summary", h.cashSummary)
		transactions.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Register a cash entry
// @Description Appends a manual inflow or outflow entry to the ledger
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Entry details"
// @Success 201 {object} dto.TransactionResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create transaction")
		return
	}
	if txn == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Transaction created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List cash entries
// @Description Retrieves ledger entries newest first, filtered by from-date or year+month and optionally by direction
// @Tags transactions
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param year query int false "Calendar year, paired with month"
// @Param month query int false "Calendar month 1..12, paired with year"
// @Param direction query string false "INFLOW or OUTFLOW"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Opaque continuation token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := parseLedgerParams(c)
	if err != nil {
		logger.Warn("Invalid ledger query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	offset := 0
	if params.NextToken != nil {
		offset, err = pagination.DecodeOffsetToken(*params.NextToken)
		if err != nil {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nextToken"})
			return
		}
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	page, next := paginateTransactions(txns, offset, limit)
	resp := dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(page),
		NextToken:    next,
	}

	logger.Debug("Transactions listed", slog.Int("count", len(page)))
	c.JSON(http.StatusOK, resp)
}

// cashSummary godoc
// @Summary Summarize cash entries
// @Description Computes balance and per-direction totals over the entries matching the filter
// @Tags transactions
// @Produce json
// @Success 200 {object} dto.CashSummaryResponse
// @Security BearerAuth
// @Router /transactions/summary [get]
func (h *transactionHandler) cashSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := parseLedgerParams(c)
	if err != nil {
		logger.Warn("Invalid ledger query params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.reportingService.CashSummary(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute cash summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// deleteTransaction godoc
// @Summary Delete a cash entry
// @Description Removes a ledger entry; the entity that produced it is untouched
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), actor, transactionID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.Status(http.StatusNoContent)
}

// paginateTransactions slices one page out of the filtered ledger and
// returns the continuation token for the next one, nil on the last page.
func paginateTransactions(txns []domain.CashTransaction, offset, limit int) ([]domain.CashTransaction, *string) {
	if offset >= len(txns) {
		return nil, nil
	}
	end := offset + limit
	if end >= len(txns) {
		return txns[offset:], nil
	}
	token := pagination.EncodeOffsetToken(end)
	return txns[offset:end], &token
}
