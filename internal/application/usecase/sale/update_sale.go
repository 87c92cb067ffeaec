// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// UpdateSaleInput represents the input for sale update.
type UpdateSaleInput struct {
	SaleID     uuid.UUID
	UserID     uuid.UUID
	Date       *time.Time       // Optional
	Time       *string          // Optional, empty clears it
	ProductID  *string          // Optional
	PlatformID *string          // Optional
	Quantity   *int             // Optional
	NetAmount  *decimal.Decimal // Optional
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *entity.Sale
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute performs the sale update.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	if input.Date != nil {
		sale.Date = *input.Date
	}
	if input.Time != nil {
		sale.Time = strings.TrimSpace(*input.Time)
	}
	if input.ProductID != nil {
		sale.ProductID = strings.TrimSpace(*input.ProductID)
	}
	if input.PlatformID != nil {
		sale.PlatformID = strings.TrimSpace(*input.PlatformID)
	}
	if input.Quantity != nil {
		sale.Quantity = *input.Quantity
	}
	if input.NetAmount != nil {
		sale.NetAmount = *input.NetAmount
	}

	if err := validateSaleFields(sale.ProductID, sale.PlatformID, sale.Time, sale.Quantity, sale.NetAmount); err != nil {
		return nil, err
	}

	sale.UpdatedAt = time.Now().UTC()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	return &UpdateSaleOutput{
		Sale: sale,
	}, nil
}
