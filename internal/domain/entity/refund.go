// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultRefundReason is stored when the platform does not send a reason.
const DefaultRefundReason = "Refund requested"

// Refund represents money returned to a customer, optionally tied to a sale.
type Refund struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	SaleID     *uuid.UUID
	ProductID  string
	PlatformID string
	Quantity   int
	Amount     decimal.Decimal
	Reason     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRefund creates a new Refund entity.
func NewRefund(
	userID uuid.UUID,
	date time.Time,
	saleID *uuid.UUID,
	productID string,
	platformID string,
	quantity int,
	amount decimal.Decimal,
	reason string,
) *Refund {
	now := time.Now().UTC()
	if reason == "" {
		reason = DefaultRefundReason
	}

	return &Refund{
		ID:         uuid.New(),
		UserID:     userID,
		Date:       date,
		SaleID:     saleID,
		ProductID:  productID,
		PlatformID: platformID,
		Quantity:   quantity,
		Amount:     amount,
		Reason:     reason,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
