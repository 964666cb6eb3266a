package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests for employees and their wage
// advances and owner withdrawals.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, es portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(es)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)

		employees.POST("/:id/advances", h.recordAdvance)
		employees.DELETE("/:id/advances/:advanceID", h.deleteAdvance)

		employees.POST("/:id/withdrawals", h.recordWithdrawal)
		employees.DELETE("/:id/withdrawals/:withdrawalID", h.deleteWithdrawal)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Description Registers a salaried, contractor or owner employee; compensation must match the class
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create employee")
		return
	}
	if employee == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponses(employees))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), actor, employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update employee")
		return
	}
	if employee == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee and their money lists; withdrawal entries already in the ledger stay
// @Tags employees
// @Param id path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), actor, employeeID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete employee")
		return
	}

	c.Status(http.StatusNoContent)
}

// recordAdvance godoc
// @Summary Record a wage advance
// @Description Records an advance for a salaried or contractor employee; advances never touch the ledger
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param advance body dto.CreateAdvanceRequest true "Advance details"
// @Success 201 {object} dto.AdvanceResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input or owner employee"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/advances [post]
func (h *employeeHandler) recordAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.CreateAdvanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordAdvance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	advance, err := h.employeeService.RecordAdvance(c.Request.Context(), actor, employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record advance")
		return
	}
	if advance == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Advance recorded", slog.String("employee_id", employeeID), slog.String("advance_id", advance.AdvanceID))
	c.JSON(http.StatusCreated, dto.ToAdvanceResponse(advance))
}

// deleteAdvance godoc
// @Summary Delete a wage advance
// @Tags employees
// @Param id path string true "Employee ID"
// @Param advanceID path string true "Advance ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Advance not found"
// @Security BearerAuth
// @Router /employees/{id}/advances/{advanceID} [delete]
func (h *employeeHandler) deleteAdvance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")
	advanceID := c.Param("advanceID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteAdvance(c.Request.Context(), actor, employeeID, advanceID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete advance")
		return
	}

	c.Status(http.StatusNoContent)
}

// recordWithdrawal godoc
// @Summary Record an owner withdrawal
// @Description Records a withdrawal for an owner and the matching outflow ledger entry
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param withdrawal body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input or non-owner employee"
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /employees/{id}/withdrawals [post]
func (h *employeeHandler) recordWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	withdrawal, err := h.employeeService.RecordWithdrawal(c.Request.Context(), actor, employeeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record withdrawal")
		return
	}
	if withdrawal == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Withdrawal recorded", slog.String("employee_id", employeeID), slog.String("withdrawal_id", withdrawal.WithdrawalID))
	c.JSON(http.StatusCreated, dto.ToWithdrawalResponse(withdrawal))
}

// deleteWithdrawal godoc
// @Summary Delete an owner withdrawal
// @Description Removes a withdrawal from the employee record; its ledger entry stays
// @Tags employees
// @Param id path string true "Employee ID"
// @Param withdrawalID path string true "Withdrawal ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Withdrawal not found"
// @Security BearerAuth
// @Router /employees/{id}/withdrawals/{withdrawalID} [delete]
func (h *employeeHandler) deleteWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("id")
	withdrawalID := c.Param("withdrawalID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteWithdrawal(c.Request.Context(), actor, employeeID, withdrawalID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete withdrawal")
		return
	}

	c.Status(http.StatusNoContent)
}
