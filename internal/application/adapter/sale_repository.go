// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// SaleFilter defines filter options for listing sales.
type SaleFilter struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	ProductIDs []string
	PlatformID string
}

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by ID scoped to its owner.
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Sale, error)

	// List retrieves sales matching the filter ordered by date and time descending.
	List(ctx context.Context, filter SaleFilter) ([]*entity.Sale, error)

	// Update updates an existing sale.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete removes a sale.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// IncrementRefunds adds amount to the sale's refunds-to-date.
	// Returns domainerror.ErrSaleNotFound when the sale does not exist for the user.
	IncrementRefunds(ctx context.Context, id, userID uuid.UUID, amount decimal.Decimal) error
}
