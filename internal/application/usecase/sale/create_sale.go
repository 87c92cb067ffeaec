// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// timeOfDayRegex matches HH:MM and HH:MM:SS.
var timeOfDayRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
	UserID     uuid.UUID
	Date       time.Time
	Time       string // Optional, HH:MM or HH:MM:SS
	ProductID  string
	PlatformID string
	Quantity   int
	NetAmount  decimal.Decimal
	Currency   string // Optional, defaults to DefaultCurrency
}

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *entity.Sale
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute performs the sale creation.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	input.ProductID = strings.TrimSpace(input.ProductID)
	input.PlatformID = strings.TrimSpace(input.PlatformID)
	input.Time = strings.TrimSpace(input.Time)

	if input.Date.IsZero() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"date is required",
			nil,
		)
	}

	if err := validateSaleFields(input.ProductID, input.PlatformID, input.Time, input.Quantity, input.NetAmount); err != nil {
		return nil, err
	}

	sale := entity.NewSale(
		input.UserID,
		input.Date,
		input.Time,
		input.ProductID,
		input.PlatformID,
		input.Quantity,
		input.NetAmount,
		strings.ToUpper(strings.TrimSpace(input.Currency)),
	)

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return &CreateSaleOutput{
		Sale: sale,
	}, nil
}

// validateSaleFields checks the invariants shared by creation and update.
func validateSaleFields(productID, platformID, timeOfDay string, quantity int, netAmount decimal.Decimal) error {
	if productID == "" || platformID == "" {
		return domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			"product_id and platform_id are required",
			domainerror.ErrMissingSaleFields,
		)
	}

	if quantity <= 0 {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleQuantity,
			"quantity must be greater than zero",
			domainerror.ErrInvalidSaleQuantity,
		)
	}

	if netAmount.IsNegative() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeNegativeSaleAmount,
			"net_amount must not be negative",
			domainerror.ErrNegativeSaleAmount,
		)
	}

	if timeOfDay != "" && !isValidTimeOfDay(timeOfDay) {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleTime,
			"time must be HH:MM or HH:MM:SS",
			domainerror.ErrInvalidSaleTime,
		)
	}

	return nil
}

// isValidTimeOfDay validates HH:MM[:SS].
func isValidTimeOfDay(value string) bool {
	return timeOfDayRegex.MatchString(value)
}
