// Package refund contains refund-related use cases.
package refund

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// CreateRefundInput represents the input for refund registration.
type CreateRefundInput struct {
	UserID     uuid.UUID
	Date       time.Time
	SaleID     *uuid.UUID // Optional link to the refunded sale
	ProductID  string
	PlatformID string
	Quantity   int
	Amount     decimal.Decimal
	Reason     string
}

// CreateRefundOutput represents the output of refund registration.
type CreateRefundOutput struct {
	Refund *entity.Refund
	// Linked reports whether the refund was attached to an existing sale.
	Linked bool
}

// CreateRefundUseCase registers a refund and updates the linked sale's refunds to date.
type CreateRefundUseCase struct {
	refundRepo adapter.RefundRepository
}

// NewCreateRefundUseCase creates a new CreateRefundUseCase instance.
func NewCreateRefundUseCase(refundRepo adapter.RefundRepository) *CreateRefundUseCase {
	return &CreateRefundUseCase{
		refundRepo: refundRepo,
	}
}

// Execute performs the refund registration.
func (uc *CreateRefundUseCase) Execute(ctx context.Context, input CreateRefundInput) (*CreateRefundOutput, error) {
	productID := strings.TrimSpace(input.ProductID)
	platformID := strings.TrimSpace(input.PlatformID)

	if input.Date.IsZero() {
		return nil, domainerror.NewRefundError(
			domainerror.ErrCodeInvalidRefundDate,
			"date is required",
			nil,
		)
	}

	if productID == "" || platformID == "" {
		return nil, domainerror.NewRefundError(
			domainerror.ErrCodeMissingRefundFields,
			"product_id and platform_id are required",
			domainerror.ErrMissingRefundFields,
		)
	}

	if input.Quantity <= 0 {
		return nil, domainerror.NewRefundError(
			domainerror.ErrCodeInvalidRefundQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidRefundQuantity,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewRefundError(
			domainerror.ErrCodeNegativeRefundAmount,
			"amount must not be negative",
			domainerror.ErrNegativeRefundAmount,
		)
	}

	refund := entity.NewRefund(
		input.UserID,
		input.Date,
		input.SaleID,
		productID,
		platformID,
		input.Quantity,
		input.Amount,
		strings.TrimSpace(input.Reason),
	)

	linked, err := uc.refundRepo.Create(ctx, refund)
	if err != nil {
		return nil, fmt.Errorf("failed to create refund: %w", err)
	}

	slog.Info("Refund registered",
		"refund_id", refund.ID,
		"user_id", input.UserID,
		"linked", linked,
	)

	return &CreateRefundOutput{
		Refund: refund,
		Linked: linked,
	}, nil
}
