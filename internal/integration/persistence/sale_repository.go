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

// saleRepository implements the adapter.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository instance.
func NewSaleRepository(db *gorm.DB) adapter.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create creates a new sale in the database.
func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(model.SaleFromEntity(sale)).Error
}

// FindByID retrieves a sale by ID scoped to its owner.
func (r *saleRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error) {
	var saleModel model.SaleModel
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&saleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSaleNotFound
		}
		return nil, result.Error
	}
	return saleModel.ToEntity(), nil
}

// List retrieves sales matching the filter ordered by date and time descending.
func (r *saleRepository) List(ctx context.Context, filter adapter.SaleFilter) ([]*entity.Sale, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if len(filter.ProductIDs) > 0 {
		query = query.Where("product_id IN ?", filter.ProductIDs)
	}
	if filter.PlatformID != "" {
		query = query.Where("platform_id = ?", filter.PlatformID)
	}

	var saleModels []model.SaleModel
	if err := query.Order("date DESC, time DESC").Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]*entity.Sale, len(saleModels))
	for i := range saleModels {
		sales[i] = saleModels[i].ToEntity()
	}
	return sales, nil
}

// Update updates an existing sale.
func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Save(model.SaleFromEntity(sale)).Error
}

// Delete removes a sale.
func (r *saleRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SaleModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}

// IncrementRefunds adds amount to the sale's refunds-to-date.
func (r *saleRepository) IncrementRefunds(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) error {
	return incrementSaleRefunds(r.db.WithContext(ctx), id, userID, amount)
}

func incrementSaleRefunds(tx *gorm.DB, id, userID uuid.UUID, amount decimal.Decimal) error {
	result := tx.Model(&model.SaleModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"refunds_to_date": gorm.Expr("refunds_to_date + ?", amount),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSaleNotFound
	}
	return nil
}
