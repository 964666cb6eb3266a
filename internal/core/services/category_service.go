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
	"github.com/google/uuid"
)

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates the category service.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, actor domain.User, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if !s.Allowed(ctx, actor, actionCreate) {
		return nil, nil
	}

	if !req.AppliesTo.Valid() {
		return nil, fmt.Errorf("unknown category scope %q: %w", req.AppliesTo, apperrors.ErrValidation)
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		AppliesTo:   req.AppliesTo,
		AuditFields: domain.NewAuditFields(actor.UserID, now),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, actor domain.User, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	if !s.Allowed(ctx, actor, actionEdit) {
		return nil, nil
	}

	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	var category *domain.Category
	for i := range categories {
		if categories[i].CategoryID == categoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return nil, fmt.Errorf("category %s: %w", categoryID, apperrors.ErrNotFound)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.AppliesTo != nil {
		if !req.AppliesTo.Valid() {
			return nil, fmt.Errorf("unknown category scope %q: %w", *req.AppliesTo, apperrors.ErrValidation)
		}
		category.AppliesTo = *req.AppliesTo
	}
	category.Touch(actor.UserID, time.Now())

	if err := s.categoryRepo.SaveCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, actor domain.User, categoryID string) error {
	if !s.Allowed(ctx, actor, actionDelete) {
		return nil
	}

	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
