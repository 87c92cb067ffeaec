// Package webhook contains use cases for sales platform webhooks.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// IngestRefundInput is the payload a platform posts for a refund.
type IngestRefundInput struct {
	UserID       string
	Date         string
	SaleID       string // Optional
	ProductID    string
	PlatformID   string
	Quantity     int
	RefundAmount decimal.Decimal
	Reason       string
}

// IngestRefundOutput represents the output of refund ingestion.
type IngestRefundOutput struct {
	RefundID uuid.UUID
	Linked   bool
}

// IngestRefundUseCase validates and stores a refund received from a platform webhook.
// When the refund names a sale, that sale's refunds to date grow in the same transaction.
type IngestRefundUseCase struct {
	refundRepo adapter.RefundRepository
}

// NewIngestRefundUseCase creates a new IngestRefundUseCase instance.
func NewIngestRefundUseCase(refundRepo adapter.RefundRepository) *IngestRefundUseCase {
	return &IngestRefundUseCase{
		refundRepo: refundRepo,
	}
}

// Execute performs the refund ingestion.
func (uc *IngestRefundUseCase) Execute(ctx context.Context, input IngestRefundInput) (*IngestRefundOutput, error) {
	common, err := parseCommon(input.UserID, input.Date, input.ProductID, input.PlatformID, input.Quantity, input.RefundAmount)
	if err != nil {
		return nil, err
	}

	var saleID *uuid.UUID
	if raw := strings.TrimSpace(input.SaleID); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerror.NewWebhookError(
				domainerror.ErrCodeWebhookInvalidPayload,
				"saleId must be a valid UUID",
				err,
			)
		}
		saleID = &parsed
	}

	refund := entity.NewRefund(
		common.userID,
		common.date,
		saleID,
		common.productID,
		common.platformID,
		input.Quantity,
		input.RefundAmount,
		strings.TrimSpace(input.Reason),
	)

	linked, err := uc.refundRepo.Create(ctx, refund)
	if err != nil {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookInternalError,
			"failed to store refund",
			fmt.Errorf("failed to create refund: %w", err),
		)
	}

	slog.Info("Webhook refund ingested",
		"refund_id", refund.ID,
		"user_id", refund.UserID,
		"linked", linked,
	)

	return &IngestRefundOutput{
		RefundID: refund.ID,
		Linked:   linked,
	}, nil
}
