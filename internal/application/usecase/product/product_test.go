package product

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

type fakeProductRepository struct {
	products []*entity.Product
}

func (r *fakeProductRepository) Create(_ context.Context, product *entity.Product) error {
	for _, existing := range r.products {
		if existing.ID == product.ID && existing.UserID == product.UserID {
			return domainerror.ErrProductAlreadyExists
		}
	}
	r.products = append(r.products, product)
	return nil
}

func (r *fakeProductRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product
	for _, product := range r.products {
		if product.UserID == userID {
			products = append(products, product)
		}
	}
	return products, nil
}

func TestCreateProductUseCase(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name         string
		input        CreateProductInput
		expectedCode domainerror.ProductErrorCode
	}{
		{
			name:  "valid product",
			input: CreateProductInput{UserID: userID, ProductID: "p2", Name: "Ebook", Price: decimal.NewFromInt(47)},
		},
		{
			name:         "duplicate id",
			input:        CreateProductInput{UserID: userID, ProductID: "p1", Name: "Curso", Price: decimal.NewFromInt(97)},
			expectedCode: domainerror.ErrCodeProductAlreadyExists,
		},
		{
			name:         "missing name",
			input:        CreateProductInput{UserID: userID, ProductID: "p3", Name: " "},
			expectedCode: domainerror.ErrCodeMissingProductFields,
		},
		{
			name:         "negative price",
			input:        CreateProductInput{UserID: userID, ProductID: "p3", Name: "Mentoria", Price: decimal.NewFromInt(-1)},
			expectedCode: domainerror.ErrCodeNegativeProductPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeProductRepository{products: []*entity.Product{
				entity.NewProduct("p1", userID, "Curso", decimal.NewFromInt(97)),
			}}

			output, err := NewCreateProductUseCase(repo).Execute(context.Background(), tt.input)
			if tt.expectedCode != "" {
				var productErr *domainerror.ProductError
				if !errors.As(err, &productErr) {
					t.Fatalf("expected ProductError, got %v", err)
				}
				if productErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, productErr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Product.ID != tt.input.ProductID {
				t.Errorf("expected product %s, got %s", tt.input.ProductID, output.Product.ID)
			}
		})
	}
}

func TestListProductsUseCase(t *testing.T) {
	userID := uuid.New()
	repo := &fakeProductRepository{products: []*entity.Product{
		entity.NewProduct("p1", userID, "Curso", decimal.NewFromInt(97)),
		entity.NewProduct("p1", uuid.New(), "Outro", decimal.NewFromInt(10)),
	}}

	output, err := NewListProductsUseCase(repo).Execute(context.Background(), ListProductsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Products) != 1 {
		t.Errorf("expected 1 product, got %d", len(output.Products))
	}
}
