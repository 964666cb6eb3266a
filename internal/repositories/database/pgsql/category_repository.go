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

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

// SaveCategory inserts or updates a category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	row := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, applies_to, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (category_id) DO UPDATE SET
			name = EXCLUDED.name,
			applies_to = EXCLUDED.applies_to,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		row.CategoryID,
		row.Name,
		row.AppliesTo,
		row.CreatedAt,
		row.CreatedBy,
		row.LastUpdatedAt,
		row.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", row.CategoryID, err)
	}
	return nil
}

// ListCategories retrieves all categories ordered by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, applies_to, created_at, created_by, last_updated_at, last_updated_by
		FROM categories
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var category models.Category
		err := row.Scan(
			&category.CategoryID,
			&category.Name,
			&category.AppliesTo,
			&category.CreatedAt,
			&category.CreatedBy,
			&category.LastUpdatedAt,
			&category.LastUpdatedBy,
		)
		return category, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Category{}, nil
		}
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	out := make([]domain.Category, len(modelCategories))
	for i, m := range modelCategories {
		out[i] = mapping.ToDomainCategory(m)
	}
	return out, nil
}

// DeleteCategory removes a category. Ledger entries keep their category
// string; nothing cascades.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `DELETE FROM categories WHERE category_id = $1;`

	tag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
