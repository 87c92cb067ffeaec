// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ListSalesInput represents the input for listing sales.
type ListSalesInput struct {
	UserID     uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	ProductIDs []string
	PlatformID string
}

// ListSalesOutput represents the output of listing sales.
type ListSalesOutput struct {
	Sales []*entity.Sale
}

// ListSalesUseCase handles listing sales.
type ListSalesUseCase struct {
	saleRepo adapter.SaleRepository
}

// NewListSalesUseCase creates a new ListSalesUseCase instance.
func NewListSalesUseCase(saleRepo adapter.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute lists the user's sales.
func (uc *ListSalesUseCase) Execute(ctx context.Context, input ListSalesInput) (*ListSalesOutput, error) {
	sales, err := uc.saleRepo.List(ctx, adapter.SaleFilter{
		UserID:     input.UserID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		ProductIDs: input.ProductIDs,
		PlatformID: input.PlatformID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}

	return &ListSalesOutput{
		Sales: sales,
	}, nil
}
