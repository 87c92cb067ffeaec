// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// RefundFilter defines filter options for listing refunds.
type RefundFilter struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// RefundRepository defines the interface for refund persistence operations.
type RefundRepository interface {
	// Create stores a refund. When the refund references a sale, the sale's
	// refunds-to-date is incremented in the same transaction. A missing sale
	// does not fail the insert; linked reports whether the increment happened.
	Create(ctx context.Context, refund *entity.Refund) (linked bool, err error)

	// List retrieves refunds matching the filter ordered by date descending.
	List(ctx context.Context, filter RefundFilter) ([]*entity.Refund, error)
}
