// Package product contains product catalog use cases.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID    uuid.UUID
	ProductID string
	Name      string
	Price     decimal.Decimal
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo adapter.ProductRepository
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
	productID := strings.TrimSpace(input.ProductID)
	name := strings.TrimSpace(input.Name)

	if productID == "" || name == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeMissingProductFields,
			"id and name are required",
			nil,
		)
	}

	if input.Price.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeNegativeProductPrice,
			"price must not be negative",
			domainerror.ErrNegativeProductPrice,
		)
	}

	product := entity.NewProduct(productID, input.UserID, name, input.Price)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, domainerror.ErrProductAlreadyExists) {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductAlreadyExists,
				"a product with this id already exists",
				domainerror.ErrProductAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &CreateProductOutput{
		Product: product,
	}, nil
}
