package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// ProjectRepository persists projects and their expenses. Find and List
// return projects with expenses populated.
type ProjectRepository interface {
	SaveProject(ctx context.Context, project domain.Project) error
	FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) error
	DeleteProject(ctx context.Context, projectID string) error

	SaveExpense(ctx context.Context, expense domain.ProjectExpense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ProjectExpense, error)
	UpdateExpense(ctx context.Context, expense domain.ProjectExpense) error
	DeleteExpense(ctx context.Context, projectID, expenseID string) error
}
