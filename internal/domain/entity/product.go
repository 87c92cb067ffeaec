// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item sold on one or more platforms.
// Its ID is the identifier used by the platforms, not a generated UUID.
type Product struct {
	ID        string
	UserID    uuid.UUID
	Name      string
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewProduct creates a new Product entity.
func NewProduct(id string, userID uuid.UUID, name string, price decimal.Decimal) *Product {
	now := time.Now().UTC()

	return &Product{
		ID:        id,
		UserID:    userID,
		Name:      name,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
