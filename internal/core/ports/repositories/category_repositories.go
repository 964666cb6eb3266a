package repositories

import (
	"context"

	"github.com/construtech/backoffice/internal/core/domain"
)

// CategoryRepository persists transaction categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}
