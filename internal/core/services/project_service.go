package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	portssvc "github.com/construtech/backoffice/internal/core/ports/services"
	"github.com/construtech/backoffice/internal/dto"
	"github.com/construtech/backoffice/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepository
	recorder    portssvc.LedgerRecorder
}

// NewProjectService creates the construction project service.
func NewProjectService(projectRepo portsrepo.ProjectRepository, recorder portssvc.LedgerRecorder) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: projectRepo, recorder: recorder}
}

var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, actor domain.User, req dto.CreateProjectRequest) (*domain.Project, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if req.Budget.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("budget must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:   uuid.NewString(),
		Name:        req.Name,
		Budget:      req.Budget,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project")
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, actor domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Budget != nil {
		if req.Budget.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("budget must be positive: %w", apperrors.ErrValidation)
		}
		// Budget changes after finalization do not reopen the frozen profit.
		project.Budget = *req.Budget
	}
	project.Touch(actor.UserID, time.Now())

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, actor domain.User, projectID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// FinalizeProject freezes profit at budget minus accumulated expenses and
// emits the matching inflow entry. Finalizing an already finalized project
// is rejected so a second entry can never be produced.
func (s *projectService) FinalizeProject(ctx context.Context, actor domain.User, projectID string) (*domain.Project, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.Finalized {
		return nil, fmt.Errorf("project %s is already finalized: %w", projectID, apperrors.ErrConflict)
	}

	project.Profit = accounting.ProjectOutcome(project.Budget, project.Expenses)
	project.Finalized = true
	project.Touch(actor.UserID, time.Now())

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to finalize project", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to finalize project: %w", err)
	}

	event := domain.LedgerEvent{
		Kind:         domain.EventProjectFinalized,
		Amount:       project.Profit,
		Counterparty: project.Name,
		Date:         time.Now(),
		Note:         fmt.Sprintf("Revenue from project %q", project.Name),
	}
	// The project stays finalized with its frozen profit either way; a
	// failed ledger write surfaces to the caller.
	if err := s.recorder.RecordEvent(ctx, actor, event); err != nil {
		s.LogError(ctx, err, "Project finalized but ledger entry missing", slog.String("project_id", projectID))
		return nil, fmt.Errorf("project finalized but ledger entry failed: %w", err)
	}

	return project, nil
}

// AddExpense records an expense against the project. Expenses after
// finalization are accepted for record keeping but never move the frozen
// profit, and they stay off the cash ledger either way.
func (s *projectService) AddExpense(ctx context.Context, actor domain.User, projectID string, req dto.CreateProjectExpenseRequest) (*domain.ProjectExpense, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if _, err := s.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	expense := domain.ProjectExpense{
		ExpenseID:   uuid.NewString(),
		ProjectID:   projectID,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.projectRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save project expense", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	return &expense, nil
}

func (s *projectService) UpdateExpense(ctx context.Context, actor domain.User, projectID, expenseID string, req dto.UpdateProjectExpenseRequest) (*domain.ProjectExpense, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	expense, err := s.projectRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense: %w", err)
	}
	if expense.ProjectID != projectID {
		return nil, fmt.Errorf("expense %s does not belong to project %s: %w", expenseID, projectID, apperrors.ErrNotFound)
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	expense.Touch(actor.UserID, time.Now())

	if err := s.projectRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update project expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

func (s *projectService) DeleteExpense(ctx context.Context, actor domain.User, projectID, expenseID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.projectRepo.DeleteExpense(ctx, projectID, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete project expense", slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
