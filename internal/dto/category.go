package dto

import (
	"github.com/construtech/backoffice/internal/core/domain"
)

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name      string               `json:"name" binding:"required"`
	AppliesTo domain.CategoryScope `json:"appliesTo" binding:"required"`
}

// UpdateCategoryRequest carries optional field updates for a category.
type UpdateCategoryRequest struct {
	Name      *string               `json:"name,omitempty"`
	AppliesTo *domain.CategoryScope `json:"appliesTo,omitempty"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	AppliesTo  string `json:"appliesTo"`
}

// ToCategoryResponse converts a domain category to its wire shape.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: c.CategoryID,
		Name:       c.Name,
		AppliesTo:  string(c.AppliesTo),
	}
}

// ToCategoryResponses converts a slice of domain categories.
func ToCategoryResponses(categories []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = ToCategoryResponse(&categories[i])
	}
	return out
}
