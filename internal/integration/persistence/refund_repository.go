// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
)

// refundRepository implements the adapter.RefundRepository interface.
type refundRepository struct {
	db *gorm.DB
}

// NewRefundRepository creates a new refund repository instance.
func NewRefundRepository(db *gorm.DB) adapter.RefundRepository {
	return &refundRepository{
		db: db,
	}
}

// Create stores the refund and increments the referenced sale's refunds-to-date
// in one transaction. When the referenced sale does not exist the refund is
// stored unlinked.
func (r *refundRepository) Create(ctx context.Context, refund *entity.Refund) (bool, error) {
	linked := false
	unlinked := false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := model.RefundFromEntity(refund)
		if refund.SaleID != nil {
			err := incrementSaleRefunds(tx, *refund.SaleID, refund.UserID, refund.Amount)
			switch {
			case err == nil:
				linked = true
			case errors.Is(err, domainerror.ErrSaleNotFound):
				slog.Warn("Refund references unknown sale, storing unlinked",
					"refundID", refund.ID,
					"saleID", refund.SaleID.String(),
					"userID", refund.UserID,
				)
				record.SaleID = nil
				unlinked = true
			default:
				return err
			}
		}

		return tx.Create(record).Error
	})
	if err != nil {
		return false, err
	}

	if unlinked {
		refund.SaleID = nil
	}

	return linked, nil
}

// List retrieves refunds matching the filter ordered by date descending.
func (r *refundRepository) List(ctx context.Context, filter adapter.RefundFilter) ([]*entity.Refund, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	var refundModels []model.RefundModel
	if err := query.Order("date DESC").Find(&refundModels).Error; err != nil {
		return nil, err
	}

	refunds := make([]*entity.Refund, len(refundModels))
	for i := range refundModels {
		refunds[i] = refundModels[i].ToEntity()
	}
	return refunds, nil
}
