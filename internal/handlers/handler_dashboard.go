package handlers

import (
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// dashboardHandler handles HTTP requests for the dashboard figures.
type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

// registerDashboardRoutes registers routes related to the dashboard.
func registerDashboardRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(rs)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/summary", h.summary)
		dashboard.GET("/expense-breakdown", h.expenseBreakdown)
		dashboard.GET("/monthly-flow", h.monthlyFlow)
	}
}

// summary godoc
// @Summary Get the dashboard headline figures
// @Description Cash balance, outstanding receivables, active debts, frozen profit and overdue counts, recomputed on every call
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *dashboardHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.DashboardSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute dashboard summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

// expenseBreakdown godoc
// @Summary Get the per-category outflow breakdown
// @Tags dashboard
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param year query int false "Calendar year, paired with month"
// @Param month query int false "Calendar month 1..12, paired with year"
// @Success 200 {object} dto.ExpenseBreakdownResponse
// @Security BearerAuth
// @Router /dashboard/expense-breakdown [get]
func (h *dashboardHandler) expenseBreakdown(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, err := parseLedgerParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	breakdown, err := h.reportingService.ExpenseBreakdown(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute expense breakdown")
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// monthlyFlow godoc
// @Summary Get inflow/outflow buckets for recent months
// @Description At most six chronological buckets; months without entries are absent
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.MonthlyFlowResponse
// @Security BearerAuth
// @Router /dashboard/monthly-flow [get]
func (h *dashboardHandler) monthlyFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	flow, err := h.reportingService.MonthlyFlow(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute monthly flow")
		return
	}

	c.JSON(http.StatusOK, flow)
}
