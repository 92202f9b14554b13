package dto

import "github.com/babetech/borastock/internal/domain/entity"

// CreateCategoryRequest body pour POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryResponse représentation API d'une catégorie.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToCategoryResponse convertit l'entité en réponse API.
func ToCategoryResponse(c entity.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
	}
}
