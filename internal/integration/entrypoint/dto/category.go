// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/usecase/category"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=50"`
	Color       string  `json:"color,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ExpenseType string  `json:"expense_type,omitempty" binding:"omitempty,oneof=fixed variable"`
}

// UpdateCategoryRequest represents the request body for category update.
// An empty parent_id detaches the category from its parent.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	ParentID    *string `json:"parent_id,omitempty"`
	ExpenseType *string `json:"expense_type,omitempty" binding:"omitempty,oneof=fixed variable"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon"`
	ParentID     *string   `json:"parent_id"`
	ExpenseType  string    `json:"expense_type"`
	ExpenseCount int       `json:"expense_count"`
	PeriodTotal  float64   `json:"period_total"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          cat.ID.String(),
		Name:        cat.Name,
		Color:       cat.Color,
		Icon:        cat.Icon,
		ParentID:    uuidString(cat.ParentID),
		ExpenseType: string(cat.ExpenseType),
		CreatedAt:   cat.CreatedAt,
		UpdatedAt:   cat.UpdatedAt,
	}
}

// ToCategoryResponseWithStats converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponseWithStats(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:           output.ID.String(),
		Name:         output.Name,
		Color:        output.Color,
		Icon:         output.Icon,
		ParentID:     uuidString(output.ParentID),
		ExpenseType:  string(output.ExpenseType),
		ExpenseCount: output.ExpenseCount,
		PeriodTotal:  output.PeriodTotal,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponseWithStats(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
