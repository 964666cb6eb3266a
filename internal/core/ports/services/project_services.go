package services

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
	"github.com/construtech/backoffice/internal/dto"
)

// ProjectReaderSvc defines read operations for construction projects
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project with its expenses.
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)

	// ListProjects retrieves all projects with their expenses.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for construction projects
type ProjectWriterSvc interface {
	// CreateProject opens a new project.
	CreateProject(ctx context.Context, actor domain.User, req dto.CreateProjectRequest) (*domain.Project, error)

	// UpdateProject updates a project's name or budget.
	UpdateProject(ctx context.Context, actor domain.User, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error)

	// DeleteProject removes a project and its expenses. The ledger is
	// untouched.
	DeleteProject(ctx context.Context, actor domain.User, projectID string) error

	// FinalizeProject freezes the project's profit at budget minus total
	// expenses and emits the matching inflow entry. Finalizing an already
	// finalized project fails with ErrConflict.
	FinalizeProject(ctx context.Context, actor domain.User, projectID string) (*domain.Project, error)
}

// ProjectExpenseSvc defines operations on project expenses
type ProjectExpenseSvc interface {
	// AddExpense records an expense against a project. Expenses stay
	// internal to the project and never touch the ledger.
	AddExpense(ctx context.Context, actor domain.User, projectID string, req dto.CreateProjectExpenseRequest) (*domain.ProjectExpense, error)

	// UpdateExpense updates an expense's fields.
	UpdateExpense(ctx context.Context, actor domain.User, projectID, expenseID string, req dto.UpdateProjectExpenseRequest) (*domain.ProjectExpense, error)

	// DeleteExpense removes a project expense.
	DeleteExpense(ctx context.Context, actor domain.User, projectID, expenseID string) error
}

// ProjectSvcFacade combines all project service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectExpenseSvc
}
