package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests for debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, ds portssvc.DebtSvcFacade) {
	h := newDebtHandler(ds)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.PUT("/:id", h.updateDebt)
		debts.DELETE("/:id", h.deleteDebt)
		debts.POST("/:id/settle", h.settleDebt)
	}
}

// createDebt godoc
// @Summary Create a debt
// @Tags debts
// @Accept json
// @Produce json
// @Param debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create debt")
		return
	}
	if debt == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Debt created", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Tags debts
// @Produce json
// @Success 200 {array} dto.DebtResponse
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list debts")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponses(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve debt")
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// updateDebt godoc
// @Summary Update a debt
// @Description Updates a debt's details; settling goes through the settle action, not here
// @Tags debts
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Param debt body dto.UpdateDebtRequest true "Fields to update"
// @Success 200 {object} dto.DebtResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id} [put]
func (h *debtHandler) updateDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	debt, err := h.debtService.UpdateDebt(c.Request.Context(), actor, debtID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update debt")
		return
	}
	if debt == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// deleteDebt godoc
// @Summary Delete a debt
// @Description Removes a debt; any settlement entry already in the ledger stays
// @Tags debts
// @Param id path string true "Debt ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id} [delete]
func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.debtService.DeleteDebt(c.Request.Context(), actor, debtID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete debt")
		return
	}

	c.Status(http.StatusNoContent)
}

// settleDebt godoc
// @Summary Settle a debt
// @Description Marks a debt settled and records the matching outflow; settling twice is a no-op
// @Tags debts
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 404 {object} map[string]string "Debt not found"
// @Security BearerAuth
// @Router /debts/{id}/settle [post]
func (h *debtHandler) settleDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	debt, err := h.debtService.SettleDebt(c.Request.Context(), actor, debtID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to settle debt")
		return
	}
	if debt == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Debt settled", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}
