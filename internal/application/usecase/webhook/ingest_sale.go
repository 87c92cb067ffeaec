// Package webhook contains use cases for sales platform webhooks.
package webhook

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// IngestSaleInput is the payload a platform posts for a new sale.
type IngestSaleInput struct {
	UserID     string
	Date       string
	Time       string
	ProductID  string
	PlatformID string
	Quantity   int
	NetAmount  decimal.Decimal
	Currency   string
}

// IngestSaleOutput represents the output of sale ingestion.
type IngestSaleOutput struct {
	SaleID uuid.UUID
}

// IngestSaleUseCase validates and stores a sale received from a platform webhook.
type IngestSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewIngestSaleUseCase creates a new IngestSaleUseCase instance.
func NewIngestSaleUseCase(saleRepo adapter.SaleRepository) *IngestSaleUseCase {
	return &IngestSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute performs the sale ingestion.
func (uc *IngestSaleUseCase) Execute(ctx context.Context, input IngestSaleInput) (*IngestSaleOutput, error) {
	common, err := parseCommon(input.UserID, input.Date, input.ProductID, input.PlatformID, input.Quantity, input.NetAmount)
	if err != nil {
		return nil, err
	}

	timeOfDay := strings.TrimSpace(input.Time)
	if timeOfDay != "" && !timeOfDayRegex.MatchString(timeOfDay) {
		slog.Warn("Webhook sale with unparseable time, storing without it",
			"time", timeOfDay,
			"user_id", common.userID,
		)
		timeOfDay = ""
	}

	sale := entity.NewSale(
		common.userID,
		common.date,
		timeOfDay,
		common.productID,
		common.platformID,
		input.Quantity,
		input.NetAmount,
		strings.ToUpper(strings.TrimSpace(input.Currency)),
	)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookInternalError,
			"failed to store sale",
			fmt.Errorf("failed to create sale: %w", err),
		)
	}

	slog.Info("Webhook sale ingested",
		"sale_id", sale.ID,
		"user_id", sale.UserID,
		"platform_id", sale.PlatformID,
	)

	return &IngestSaleOutput{
		SaleID: sale.ID,
	}, nil
}

// commonFields holds the validated fields shared by sale and refund payloads.
type commonFields struct {
	userID     uuid.UUID
	date       time.Time
	productID  string
	platformID string
}

func parseCommon(rawUserID, rawDate, productID, platformID string, quantity int, amount decimal.Decimal) (*commonFields, error) {
	rawUserID = strings.TrimSpace(rawUserID)
	rawDate = strings.TrimSpace(rawDate)
	productID = strings.TrimSpace(productID)
	platformID = strings.TrimSpace(platformID)

	if rawUserID == "" || rawDate == "" || productID == "" || platformID == "" {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookMissingFields,
			"userId, date, productId and platformId are required",
			domainerror.ErrWebhookMissingFields,
		)
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookInvalidUser,
			"userId must be a valid UUID",
			err,
		)
	}

	date, err := time.Parse(valueobject.DateLayout, rawDate)
	if err != nil {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookInvalidDate,
			"date must be YYYY-MM-DD",
			err,
		)
	}

	if quantity <= 0 {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookInvalidQuantity,
			"quantity must be greater than zero",
			domainerror.ErrWebhookInvalidQuantity,
		)
	}

	if amount.IsNegative() {
		return nil, domainerror.NewWebhookError(
			domainerror.ErrCodeWebhookNegativeAmount,
			"amount must not be negative",
			domainerror.ErrWebhookNegativeAmount,
		)
	}

	return &commonFields{
		userID:     userID,
		date:       date,
		productID:  productID,
		platformID: platformID,
	}, nil
}
