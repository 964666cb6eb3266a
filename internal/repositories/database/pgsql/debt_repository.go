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

type PgxDebtRepository struct {
	BaseRepository
}

// newPgxDebtRepository creates a new repository for debt data.
func newPgxDebtRepository(pool *pgxpool.Pool) portsrepo.DebtRepository {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DebtRepository = (*PgxDebtRepository)(nil)

func scanDebt(row pgx.CollectableRow) (models.Debt, error) {
	var debt models.Debt
	err := row.Scan(
		&debt.DebtID,
		&debt.Name,
		&debt.Amount,
		&debt.DueDate,
		&debt.Status,
		&debt.CreatedAt,
		&debt.CreatedBy,
		&debt.LastUpdatedAt,
		&debt.LastUpdatedBy,
	)
	return debt, err
}

// SaveDebt inserts a new debt.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) error {
	row := mapping.ToModelDebt(debt)

	query := `
		INSERT INTO debts (debt_id, name, amount, due_date, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err := r.Pool.Exec(ctx, query,
		row.DebtID,
		row.Name,
		row.Amount,
		row.DueDate,
		row.Status,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save debt %s: %w", row.DebtID, err)
	}
	return nil
}

// FindDebtByID retrieves a debt by ID.
func (r *PgxDebtRepository) FindDebtByID(ctx context.Context, debtID string) (*domain.Debt, error) {
	query := `
		SELECT debt_id, name, amount, due_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM debts
		WHERE debt_id = $1;
	`
	rows, err := r.Pool.Query(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debt %s: %w", debtID, err)
	}

	row, err := pgx.CollectOneRow(rows, scanDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find debt %s: %w", debtID, err)
	}

	debt := mapping.ToDomainDebt(row)
	return &debt, nil
}

// ListDebts retrieves all debts, soonest due first.
func (r *PgxDebtRepository) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	query := `
		SELECT debt_id, name, amount, due_date, status, created_at, created_by, last_updated_at, last_updated_by
		FROM debts
		ORDER BY due_date;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	modelDebts, err := pgx.CollectRows(rows, scanDebt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Debt{}, nil
		}
		return nil, fmt.Errorf("failed to scan debts: %w", err)
	}

	out := make([]domain.Debt, len(modelDebts))
	for i, m := range modelDebts {
		out[i] = mapping.ToDomainDebt(m)
	}
	return out, nil
}

// UpdateDebt writes back every mutable field of a debt.
func (r *PgxDebtRepository) UpdateDebt(ctx context.Context, debt domain.Debt) error {
	row := mapping.ToModelDebt(debt)

	query := `
		UPDATE debts
		SET name = $2, amount = $3, due_date = $4, status = $5, last_updated_at = $6, last_updated_by = $7
		WHERE debt_id = $1;
	`

	tag, err := r.Pool.Exec(ctx, query,
		row.DebtID,
		row.Name,
		row.Amount,
		row.DueDate,
		row.Status,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to update debt %s: %w", row.DebtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteDebt removes a debt. The ledger is untouched.
func (r *PgxDebtRepository) DeleteDebt(ctx context.Context, debtID string) error {
	query := `DELETE FROM debts WHERE debt_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, debtID)
	if err != nil {
		return fmt.Errorf("failed to delete debt %s: %w", debtID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
