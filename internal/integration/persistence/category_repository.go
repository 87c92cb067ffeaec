// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a category by its ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindByUser retrieves all categories for a given user.
func (r *categoryRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

// FindByUserAndType retrieves categories for a given user filtered by expense type.
func (r *categoryRepository) FindByUserAndType(ctx context.Context, userID uuid.UUID, expenseType entity.ExpenseType) ([]*entity.Category, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ? AND expense_type = ?", userID, string(expenseType)))
}

func (r *categoryRepository) find(_ context.Context, query *gorm.DB) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	if err := query.Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, err
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i := range categoryModels {
		categories[i] = categoryModels[i].ToEntity()
	}
	return categories, nil
}

// Update updates an existing category in the database.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete soft-deletes a category and detaches it from its expenses and subcategories.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.ExpenseModel{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.CategoryModel{}).
			Where("parent_id = ?", id).
			Update("parent_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.CategoryModel{}, "id = ?", id).Error
	})
}

// ExistsByNameAndUser checks if a category with the given name exists for the user.
func (r *categoryRepository) ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ? AND user_id = ?", name, userID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// GetExpenseStats retrieves expense statistics for categories within a date range.
func (r *categoryRepository) GetExpenseStats(ctx context.Context, categoryIDs []uuid.UUID, startDate, endDate time.Time) (map[uuid.UUID]*adapter.CategoryStats, error) {
	stats := make(map[uuid.UUID]*adapter.CategoryStats)
	if len(categoryIDs) == 0 {
		return stats, nil
	}

	var rows []struct {
		CategoryID uuid.UUID           `gorm:"column:category_id"`
		Count      int                 `gorm:"column:expense_count"`
		Total      decimal.NullDecimal `gorm:"column:period_total"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("category_id, COUNT(*) AS expense_count, SUM(amount) AS period_total").
		Where("category_id IN ?", categoryIDs).
		Where("date >= ? AND date <= ?", startDate, endDate).
		Group("category_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		total, _ := row.Total.Decimal.Float64()
		stats[row.CategoryID] = &adapter.CategoryStats{
			ExpenseCount: row.Count,
			PeriodTotal:  total,
		}
	}
	return stats, nil
}
