// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product. Returns domainerror.ErrProductAlreadyExists
	// when the external id is already registered for the user.
	Create(ctx context.Context, product *entity.Product) error

	// FindByUser retrieves all products of a user ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
}
