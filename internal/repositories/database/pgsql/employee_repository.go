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

type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new repository for employee data,
// including wage advances and owner withdrawals.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepository {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmployeeRepository = (*PgxEmployeeRepository)(nil)

func scanEmployee(row pgx.CollectableRow) (models.Employee, error) {
	var e models.Employee
	err := row.Scan(
		&e.EmployeeID,
		&e.Name,
		&e.Class,
		&e.Role,
		&e.Salary,
		&e.DailyRate,
		&e.AvatarURL,
		&e.CreatedAt,
		&e.CreatedBy,
		&e.LastUpdatedAt,
		&e.LastUpdatedBy,
	)
	return e, err
}

func scanAdvance(row pgx.CollectableRow) (models.WageAdvance, error) {
	var a models.WageAdvance
	err := row.Scan(
		&a.AdvanceID,
		&a.EmployeeID,
		&a.Amount,
		&a.Date,
		&a.CreatedAt,
		&a.CreatedBy,
		&a.LastUpdatedAt,
		&a.LastUpdatedBy,
	)
	return a, err
}

func scanWithdrawal(row pgx.CollectableRow) (models.OwnerWithdrawal, error) {
	var w models.OwnerWithdrawal
	err := row.Scan(
		&w.WithdrawalID,
		&w.EmployeeID,
		&w.Amount,
		&w.Date,
		&w.Note,
		&w.CreatedAt,
		&w.CreatedBy,
		&w.LastUpdatedAt,
		&w.LastUpdatedBy,
	)
	return w, err
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	row := mapping.ToModelEmployee(employee)

	query := `
		INSERT INTO employees (employee_id, name, class, role, salary, daily_rate, avatar_url, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.EmployeeID,
		row.Name,
		row.Class,
		row.Role,
		row.Salary,
		row.DailyRate,
		row.AvatarURL,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save employee %s: %w", row.EmployeeID, err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee with the money list matching their
// class populated.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, name, class, role, salary, daily_rate, avatar_url, created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		WHERE employee_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee %s: %w", employeeID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanEmployee)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	employee := mapping.ToDomainEmployee(row)
	if err := r.attachMoneyLists(ctx, &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListEmployees retrieves all employees with their money lists populated.
func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `
		SELECT employee_id, name, class, role, salary, daily_rate, avatar_url, created_at, created_by, last_updated_at, last_updated_by
		FROM employees
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees, err := pgx.CollectRows(rows, scanEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}

	out := make([]domain.Employee, len(modelEmployees))
	for i, m := range modelEmployees {
		employee := mapping.ToDomainEmployee(m)
		if err := r.attachMoneyLists(ctx, &employee); err != nil {
			return nil, err
		}
		out[i] = employee
	}
	return out, nil
}

func (r *PgxEmployeeRepository) attachMoneyLists(ctx context.Context, employee *domain.Employee) error {
	if employee.Class == domain.Owner {
		withdrawals, err := r.listWithdrawals(ctx, employee.EmployeeID)
		if err != nil {
			return err
		}
		employee.Withdrawals = withdrawals
		return nil
	}

	advances, err := r.listAdvances(ctx, employee.EmployeeID)
	if err != nil {
		return err
	}
	employee.Advances = advances
	return nil
}

func (r *PgxEmployeeRepository) listAdvances(ctx context.Context, employeeID string) ([]domain.WageAdvance, error) {
	query := `
		SELECT advance_id, employee_id, amount, advance_date, created_at, created_by, last_updated_at, last_updated_by
		FROM wage_advances
		WHERE employee_id = $1
		ORDER BY advance_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advances for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelAdvances, err := pgx.CollectRows(rows, scanAdvance)
	if err != nil {
		return nil, fmt.Errorf("failed to scan advances for employee %s: %w", employeeID, err)
	}

	out := make([]domain.WageAdvance, len(modelAdvances))
	for i, m := range modelAdvances {
		out[i] = mapping.ToDomainAdvance(m)
	}
	return out, nil
}

func (r *PgxEmployeeRepository) listWithdrawals(ctx context.Context, employeeID string) ([]domain.OwnerWithdrawal, error) {
	query := `
		SELECT withdrawal_id, employee_id, amount, withdrawal_date, note, created_at, created_by, last_updated_at, last_updated_by
		FROM owner_withdrawals
		WHERE employee_id = $1
		ORDER BY withdrawal_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelWithdrawals, err := pgx.CollectRows(rows, scanWithdrawal)
	if err != nil {
		return nil, fmt.Errorf("failed to scan withdrawals for employee %s: %w", employeeID, err)
	}

	out := make([]domain.OwnerWithdrawal, len(modelWithdrawals))
	for i, m := range modelWithdrawals {
		out[i] = mapping.ToDomainWithdrawal(m)
	}
	return out, nil
}

// UpdateEmployee writes back every mutable field of an employee.
func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	row := mapping.ToModelEmployee(employee)

	query := `
		UPDATE employees
		SET name = $2, class = $3, role = $4, salary = $5, daily_rate = $6, avatar_url = $7, last_updated_at = $8, last_updated_by = $9
		WHERE employee_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		row.EmployeeID,
		row.Name,
		row.Class,
		row.Role,
		row.Salary,
		row.DailyRate,
		row.AvatarURL,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", row.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEmployee removes an employee together with their advances and
// withdrawals. The ledger is untouched.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM wage_advances WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete advances for employee %s: %w", employeeID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM owner_withdrawals WHERE employee_id = $1;`, employeeID); err != nil {
		return fmt.Errorf("failed to delete withdrawals for employee %s: %w", employeeID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// SaveAdvance inserts a wage advance for an employee.
func (r *PgxEmployeeRepository) SaveAdvance(ctx context.Context, advance domain.WageAdvance) error {
	row := mapping.ToModelAdvance(advance)

	query := `
		INSERT INTO wage_advances (advance_id, employee_id, amount, advance_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.AdvanceID,
		row.EmployeeID,
		row.Amount,
		row.Date,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save advance %s: %w", row.AdvanceID, err)
	}
	return nil
}

// DeleteAdvance removes a wage advance belonging to an employee.
func (r *PgxEmployeeRepository) DeleteAdvance(ctx context.Context, employeeID, advanceID string) error {
	query := `DELETE FROM wage_advances WHERE advance_id = $1 AND employee_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, advanceID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete advance %s: %w", advanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveWithdrawal inserts an owner withdrawal for an employee.
func (r *PgxEmployeeRepository) SaveWithdrawal(ctx context.Context, withdrawal domain.OwnerWithdrawal) error {
	row := mapping.ToModelWithdrawal(withdrawal)

	query := `
		INSERT INTO owner_withdrawals (withdrawal_id, employee_id, amount, withdrawal_date, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.WithdrawalID,
		row.EmployeeID,
		row.Amount,
		row.Date,
		row.Note,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save withdrawal %s: %w", row.WithdrawalID, err)
	}
	return nil
}

// DeleteWithdrawal removes an owner withdrawal belonging to an employee.
// The ledger is untouched.
func (r *PgxEmployeeRepository) DeleteWithdrawal(ctx context.Context, employeeID, withdrawalID string) error {
	query := `DELETE FROM owner_withdrawals WHERE withdrawal_id = $1 AND employee_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, withdrawalID, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete withdrawal %s: %w", withdrawalID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
