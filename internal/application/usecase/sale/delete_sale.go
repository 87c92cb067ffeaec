// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID uuid.UUID
	UserID uuid.UUID
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
	}
}

// Execute performs the sale deletion.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) error {
	if err := uc.saleRepo.Delete(ctx, input.SaleID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return nil
}
