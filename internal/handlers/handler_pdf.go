package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/construtech/backoffice/internal/pdf"
	"github.com/gin-gonic/gin"
)

// pdfHandler handles HTTP requests for printable documents.
type pdfHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newPDFHandler(ts portssvc.TransactionSvcFacade) *pdfHandler {
	return &pdfHandler{transactionService: ts}
}

// registerPDFRoutes registers routes related to PDF documents.
func registerPDFRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newPDFHandler(ts)

	docs := rg.Group("/pdf")
	{
		docs.POST("/quote", h.quote)
		docs.GET("/statement", h.statement)
	}
}

// quote godoc
// @Summary Generate a service quote PDF
// @Description Renders a styled quote document and returns it inline
// @Tags pdf
// @Accept json
// @Produce application/pdf
// @Param quote body dto.QuoteRequest true "Quote details"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /pdf/quote [post]
func (h *pdfHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Quote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	out, err := pdf.RenderQuote(req)
	if err != nil {
		logger.Error("Failed to render quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render quote"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="quote.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// statement godoc
// @Summary Generate a cash statement PDF
// @Description Renders the ledger entries matching the usual list filters as an inline statement
// @Tags pdf
// @Produce application/pdf
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param year query int false "Calendar year, paired with month"
// @Param month query int false "Calendar month 1..12, paired with year"
// @Param direction query string false "INFLOW or OUTFLOW"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /pdf/statement [get]
func (h *pdfHandler) statement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := parseLedgerParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to read ledger")
		return
	}

	out, err := pdf.RenderStatement(statementWindow(params), txns)
	if err != nil {
		logger.Error("Failed to render statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render statement"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="statement.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// statementWindow describes the active filter for the statement header.
func statementWindow(params dto.ListTransactionsParams) string {
	switch {
	case params.FilterByMonth():
		return fmt.Sprintf("%s %d", params.Month, params.Year)
	case params.From != nil:
		return "From " + params.From.Format("2006-01-02")
	default:
		return "Full ledger"
	}
}
