package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// receivableHandler handles HTTP requests for receivables and their
// payments.
type receivableHandler struct {
	receivableService portssvc.ReceivableSvcFacade
	reportingService  portssvc.ReportingSvcFacade
}

func newReceivableHandler(rs portssvc.ReceivableSvcFacade, rep portssvc.ReportingSvcFacade) *receivableHandler {
	return &receivableHandler{
		receivableService: rs,
		reportingService:  rep,
	}
}

// registerReceivableRoutes registers routes related to receivables.
func registerReceivableRoutes(rg *gin.RouterGroup, rs portssvc.ReceivableSvcFacade, rep portssvc.ReportingSvcFacade) {
	h := newReceivableHandler(rs, rep)

	receivables := rg.Group("/receivables")
	{
		receivables.POST("", h.createReceivable)
		receivables.GET("", h.listReceivables)
		receivables.GET("/:id", h.getReceivable)
		receivables.PUT("/:id", h.updateReceivable)
		receivables.DELETE("/:id", h.deleteReceivable)
		receivables.GET("/:id/progress", h.receivableProgress)

		receivables.POST("/:id/payments", h.recordPayment)
		receivables.DELETE("/:id/payments/:paymentID", h.deletePayment)
	}
}

// createReceivable godoc
// @Summary Create a receivable
// @Tags receivables
// @Accept json
// @Produce json
// @Param receivable body dto.CreateReceivableRequest true "Receivable details"
// @Success 201 {object} dto.ReceivableResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /receivables [post]
func (h *receivableHandler) createReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	receivable, err := h.receivableService.CreateReceivable(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create receivable")
		return
	}
	if receivable == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Receivable created", slog.String("receivable_id", receivable.ReceivableID))
	c.JSON(http.StatusCreated, dto.ToReceivableResponse(receivable))
}

// listReceivables godoc
// @Summary List receivables
// @Tags receivables
// @Produce json
// @Success 200 {array} dto.ReceivableResponse
// @Security BearerAuth
// @Router /receivables [get]
func (h *receivableHandler) listReceivables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	receivables, err := h.receivableService.ListReceivables(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list receivables")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponses(receivables))
}

// getReceivable godoc
// @Summary Get a receivable by ID
// @Tags receivables
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} dto.ReceivableResponse
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id} [get]
func (h *receivableHandler) getReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	receivable, err := h.receivableService.GetReceivableByID(c.Request.Context(), receivableID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve receivable")
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

// updateReceivable godoc
// @Summary Update a receivable
// @Description Updates the customer or total; totals below the amount already paid are rejected
// @Tags receivables
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param receivable body dto.UpdateReceivableRequest true "Fields to update"
// @Success 200 {object} dto.ReceivableResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id} [put]
func (h *receivableHandler) updateReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	var req dto.UpdateReceivableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateReceivable", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	receivable, err := h.receivableService.UpdateReceivable(c.Request.Context(), actor, receivableID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update receivable")
		return
	}
	if receivable == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivableResponse(receivable))
}

// deleteReceivable godoc
// @Summary Delete a receivable
// @Description Removes a receivable and its payments; payment entries already in the ledger stay
// @Tags receivables
// @Param id path string true "Receivable ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id} [delete]
func (h *receivableHandler) deleteReceivable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.receivableService.DeleteReceivable(c.Request.Context(), actor, receivableID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete receivable")
		return
	}

	c.Status(http.StatusNoContent)
}

// receivableProgress godoc
// @Summary Get collection progress for a receivable
// @Tags receivables
// @Produce json
// @Param id path string true "Receivable ID"
// @Success 200 {object} dto.ReceivableProgressResponse
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id}/progress [get]
func (h *receivableHandler) receivableProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	progress, err := h.reportingService.ReceivableProgress(c.Request.Context(), receivableID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute receivable progress")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Records a payment against a receivable and the matching inflow ledger entry; payments above the outstanding amount are rejected
// @Tags receivables
// @Accept json
// @Produce json
// @Param id path string true "Receivable ID"
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input or amount above outstanding"
// @Failure 404 {object} map[string]string "Receivable not found"
// @Security BearerAuth
// @Router /receivables/{id}/payments [post]
func (h *receivableHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	payment, err := h.receivableService.RecordPayment(c.Request.Context(), actor, receivableID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record payment")
		return
	}
	if payment == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Payment recorded", slog.String("receivable_id", receivableID), slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// deletePayment godoc
// @Summary Delete a payment
// @Description Removes a payment and rolls its amount out of the paid total; its ledger entry stays
// @Tags receivables
// @Param id path string true "Receivable ID"
// @Param paymentID path string true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Payment not found"
// @Security BearerAuth
// @Router /receivables/{id}/payments/{paymentID} [delete]
func (h *receivableHandler) deletePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receivableID := c.Param("id")
	paymentID := c.Param("paymentID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.receivableService.DeletePayment(c.Request.Context(), actor, receivableID, paymentID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete payment")
		return
	}

	c.Status(http.StatusNoContent)
}
