// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is applied to sales recorded without an explicit currency.
const DefaultCurrency = "BRL"

// Sale represents a single sale line item reported by a selling platform.
type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Date          time.Time
	Time          string // HH:MM or HH:MM:SS, empty when the platform did not report it
	ProductID     string
	PlatformID    string
	Quantity      int
	NetAmount     decimal.Decimal // After platform fees, before refunds
	RefundsToDate decimal.Decimal
	Currency      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSale creates a new Sale entity.
func NewSale(
	userID uuid.UUID,
	date time.Time,
	timeOfDay string,
	productID string,
	platformID string,
	quantity int,
	netAmount decimal.Decimal,
	currency string,
) *Sale {
	now := time.Now().UTC()
	if currency == "" {
		currency = DefaultCurrency
	}

	return &Sale{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          date,
		Time:          timeOfDay,
		ProductID:     productID,
		PlatformID:    platformID,
		Quantity:      quantity,
		NetAmount:     netAmount,
		RefundsToDate: decimal.Zero,
		Currency:      currency,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// AddRefund increases the refund total stored on the sale.
func (s *Sale) AddRefund(amount decimal.Decimal) {
	s.RefundsToDate = s.RefundsToDate.Add(amount)
	s.UpdatedAt = time.Now().UTC()
}
