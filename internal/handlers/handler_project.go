package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/middleware"
	"github.com/construtech/backoffice/internal/pdf"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests for construction projects.
type projectHandler struct {
	projectService   portssvc.ProjectSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade, rs portssvc.ReportingSvcFacade) *projectHandler {
	return &projectHandler{
		projectService:   ps,
		reportingService: rs,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, ps portssvc.ProjectSvcFacade, rs portssvc.ReportingSvcFacade) {
	h := newProjectHandler(ps, rs)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.POST("/:id/finalize", h.finalizeProject)
		projects.GET("/:id/outcome", h.projectOutcome)
		projects.GET("/:id/report", h.projectReport)

		projects.POST("/:id/expenses", h.addExpense)
		projects.PUT("/:id/expenses/:expenseID", h.updateExpense)
		projects.DELETE("/:id/expenses/:expenseID", h.deleteExpense)
	}
}

// createProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create project")
		return
	}
	if project == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list projects")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// getProject godoc
// @Summary Get a project by ID
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve project")
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Updates a project's name or budget; a frozen profit never reopens
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), actor, projectID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update project")
		return
	}
	if project == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deleteProject godoc
// @Summary Delete a project
// @Description Removes a project and its expenses; any revenue entry already in the ledger stays
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), actor, projectID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete project")
		return
	}

	c.Status(http.StatusNoContent)
}

// finalizeProject godoc
// @Summary Finalize a project
// @Description Freezes profit at budget minus total expenses and records the matching inflow
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 409 {object} map[string]string "Project already finalized"
// @Security BearerAuth
// @Router /projects/{id}/finalize [post]
func (h *projectHandler) finalizeProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	project, err := h.projectService.FinalizeProject(c.Request.Context(), actor, projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to finalize project")
		return
	}
	if project == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Project finalized", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// projectOutcome godoc
// @Summary Get budget versus spend for a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} dto.ProjectOutcomeResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/outcome [get]
func (h *projectHandler) projectOutcome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	outcome, err := h.reportingService.ProjectOutcome(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute project outcome")
		return
	}

	c.JSON(http.StatusOK, outcome)
}

// projectReport godoc
// @Summary Download a project report PDF
// @Description Renders budget, expenses and outcome as an inline PDF
// @Tags projects
// @Produce application/pdf
// @Param id path string true "Project ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/report [get]
func (h *projectHandler) projectReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve project")
		return
	}

	out, err := pdf.RenderProjectReport(*project)
	if err != nil {
		logger.Error("Failed to render project report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render report"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="project-report.pdf"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// addExpense godoc
// @Summary Record a project expense
// @Description Adds an expense to the project log; expenses never touch the ledger
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param expense body dto.CreateProjectExpenseRequest true "Expense details"
// @Success 201 {object} dto.ProjectExpenseResponse
// @Success 204 "Actor lacks create permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/expenses [post]
func (h *projectHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var req dto.CreateProjectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	expense, err := h.projectService.AddExpense(c.Request.Context(), actor, projectID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record expense")
		return
	}
	if expense == nil {
		c.Status(http.StatusNoContent)
		return
	}

	logger.Info("Expense recorded", slog.String("project_id", projectID), slog.String("expense_id", expense.ExpenseID))
	c.JSON(http.StatusCreated, dto.ToProjectExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update a project expense
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param expenseID path string true "Expense ID"
// @Param expense body dto.UpdateProjectExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ProjectExpenseResponse
// @Success 204 "Actor lacks edit permission"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /projects/{id}/expenses/{expenseID} [put]
func (h *projectHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")
	expenseID := c.Param("expenseID")

	var req dto.UpdateProjectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	expense, err := h.projectService.UpdateExpense(c.Request.Context(), actor, projectID, expenseID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update expense")
		return
	}
	if expense == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete a project expense
// @Tags projects
// @Param id path string true "Project ID"
// @Param expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /projects/{id}/expenses/{expenseID} [delete]
func (h *projectHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")
	expenseID := c.Param("expenseID")

	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	if err := h.projectService.DeleteExpense(c.Request.Context(), actor, projectID, expenseID); err != nil {
		respondServiceError(c, logger, err, "Failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
