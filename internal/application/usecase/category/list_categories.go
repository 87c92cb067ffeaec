// Package category contains category-related use cases.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct {
	UserID      uuid.UUID
	ExpenseType *entity.ExpenseType // Optional filter by expense type
	StartDate   *time.Time          // Optional start date for statistics
	EndDate     *time.Time          // Optional end date for statistics
}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	ID           uuid.UUID
	Name         string
	Color        string
	Icon         string
	ParentID     *uuid.UUID
	ExpenseType  entity.ExpenseType
	ExpenseCount int
	PeriodTotal  float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ListCategoriesUseCase handles listing categories logic.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	var categories []*entity.Category
	var err error

	if input.ExpenseType != nil {
		if !input.ExpenseType.IsValid() {
			return nil, invalidExpenseTypeError()
		}
		categories, err = uc.categoryRepo.FindByUserAndType(ctx, input.UserID, *input.ExpenseType)
	} else {
		categories, err = uc.categoryRepo.FindByUser(ctx, input.UserID)
	}

	if err != nil {
		return nil, err
	}

	// Expense statistics only when a full date range is provided
	var stats map[uuid.UUID]*adapter.CategoryStats
	if input.StartDate != nil && input.EndDate != nil && len(categories) > 0 {
		categoryIDs := make([]uuid.UUID, len(categories))
		for i, cat := range categories {
			categoryIDs[i] = cat.ID
		}
		stats, err = uc.categoryRepo.GetExpenseStats(ctx, categoryIDs, *input.StartDate, *input.EndDate)
		if err != nil {
			slog.Warn("Failed to load category stats, listing without them",
				"user_id", input.UserID,
				"error", err,
			)
			stats = nil
		}
	}

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, len(categories)),
	}

	for i, cat := range categories {
		categoryOutput := &CategoryOutput{
			ID:          cat.ID,
			Name:        cat.Name,
			Color:       cat.Color,
			Icon:        cat.Icon,
			ParentID:    cat.ParentID,
			ExpenseType: cat.ExpenseType,
			CreatedAt:   cat.CreatedAt,
			UpdatedAt:   cat.UpdatedAt,
		}

		if catStats, ok := stats[cat.ID]; ok {
			categoryOutput.ExpenseCount = catStats.ExpenseCount
			categoryOutput.PeriodTotal = catStats.PeriodTotal
		}

		output.Categories[i] = categoryOutput
	}

	return output, nil
}
