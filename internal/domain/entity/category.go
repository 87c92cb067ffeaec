// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents an expense category owned by a user.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Color       string
	Icon        string
	ParentID    *uuid.UUID  // Optional parent for subcategories
	ExpenseType ExpenseType // Type suggested for new expenses in this category
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time // Soft-delete support
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(userID uuid.UUID, name, color, icon string, parentID *uuid.UUID, expenseType ExpenseType) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Color:       color,
		Icon:        icon,
		ParentID:    parentID,
		ExpenseType: expenseType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
