package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/construtech/backoffice/internal/apperrors"
	"github.com/construtech/backoffice/internal/core/domain"
	portsrepo "github.com/construtech/backoffice/internal/core/ports/repositories"
	"github.com/construtech/backoffice/internal/models"
	"github.com/construtech/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data,
// including project expenses.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func scanProject(row pgx.CollectableRow) (models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ProjectID,
		&p.Name,
		&p.Budget,
		&p.Profit,
		&p.Finalized,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

func scanExpense(row pgx.CollectableRow) (models.ProjectExpense, error) {
	var e models.ProjectExpense
	err := row.Scan(
		&e.ExpenseID,
		&e.ProjectID,
		&e.Category,
		&e.Description,
		&e.Amount,
		&e.Date,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	row := mapping.ToModelProject(project)

	query := `
		INSERT INTO projects (project_id, name, budget, profit, finalized, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.ProjectID,
		row.Name,
		row.Budget,
		row.Profit,
		row.Finalized,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", row.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project with its expenses populated.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, budget, profit, finalized, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		WHERE project_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query project %s: %w", projectID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanProject)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %s: %w", projectID, err)
	}

	project := mapping.ToDomainProject(row)
	expenses, err := r.listExpenses(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}
	project.Expenses = expenses
	return &project, nil
}

// ListProjects retrieves all projects with their expenses populated.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT project_id, name, budget, profit, finalized, created_at, created_by, last_updated_at, last_updated_by
		FROM projects
		ORDER BY created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, scanProject)
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	out := make([]domain.Project, len(modelProjects))
	for i, m := range modelProjects {
		project := mapping.ToDomainProject(m)
		expenses, err := r.listExpenses(ctx, project.ProjectID)
		if err != nil {
			return nil, err
		}
		project.Expenses = expenses
		out[i] = project
	}
	return out, nil
}

func (r *PgxProjectRepository) listExpenses(ctx context.Context, projectID string) ([]domain.ProjectExpense, error) {
	query := `
		SELECT expense_id, project_id, category, description, amount, expense_date, created_at, created_by, last_updated_at, last_updated_by
		FROM project_expenses
		WHERE project_id = $1
		ORDER BY expense_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, scanExpense)
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses for project %s: %w", projectID, err)
	}

	out := make([]domain.ProjectExpense, len(modelExpenses))
	for i, m := range modelExpenses {
		out[i] = mapping.ToDomainExpense(m)
	}
	return out, nil
}

// UpdateProject writes back every mutable field of a project.
func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	row := mapping.ToModelProject(project)

	query := `
		UPDATE projects
		SET name = $2, budget = $3, profit = $4, finalized = $5, last_updated_at = $6, last_updated_by = $7
		WHERE project_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		row.ProjectID,
		row.Name,
		row.Budget,
		row.Profit,
		row.Finalized,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update project %s: %w", row.ProjectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProject removes a project together with its expenses. The ledger is
// untouched.
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM project_expenses WHERE project_id = $1;`, projectID); err != nil {
		return fmt.Errorf("failed to delete expenses for project %s: %w", projectID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE project_id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SaveExpense inserts an expense against a project.
func (r *PgxProjectRepository) SaveExpense(ctx context.Context, expense domain.ProjectExpense) error {
	row := mapping.ToModelExpense(expense)

	query := `
		INSERT INTO project_expenses (expense_id, project_id, category, description, amount, expense_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.ExpenseID,
		row.ProjectID,
		row.Category,
		row.Description,
		row.Amount,
		row.Date,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save expense %s: %w", row.ExpenseID, err)
	}
	return nil
}

// FindExpenseByID retrieves a single project expense.
func (r *PgxProjectRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ProjectExpense, error) {
	query := `
		SELECT expense_id, project_id, category, description, amount, expense_date, created_at, created_by, last_updated_at, last_updated_by
		FROM project_expenses
		WHERE expense_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense %s: %w", expenseID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanExpense)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense := mapping.ToDomainExpense(row)
	return &expense, nil
}

// UpdateExpense writes back every mutable field of a project expense.
func (r *PgxProjectRepository) UpdateExpense(ctx context.Context, expense domain.ProjectExpense) error {
	row := mapping.ToModelExpense(expense)

	query := `
		UPDATE project_expenses
		SET category = $2, description = $3, amount = $4, expense_date = $5, last_updated_at = $6, last_updated_by = $7
		WHERE expense_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		row.ExpenseID,
		row.Category,
		row.Description,
		row.Amount,
		row.Date,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", row.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteExpense removes an expense belonging to a project.
func (r *PgxProjectRepository) DeleteExpense(ctx context.Context, projectID, expenseID string) error {
	query := `DELETE FROM project_expenses WHERE expense_id = $1 AND project_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, expenseID, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
