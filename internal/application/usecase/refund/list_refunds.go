// Package refund contains refund-related use cases.
package refund

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ListRefundsInput represents the input for listing refunds.
type ListRefundsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// ListRefundsOutput represents the output of listing refunds.
type ListRefundsOutput struct {
	Refunds []*entity.Refund
}

// ListRefundsUseCase handles listing refunds.
type ListRefundsUseCase struct {
	refundRepo adapter.RefundRepository
}

// NewListRefundsUseCase creates a new ListRefundsUseCase instance.
func NewListRefundsUseCase(refundRepo adapter.RefundRepository) *ListRefundsUseCase {
	return &ListRefundsUseCase{
		refundRepo: refundRepo,
	}
}

// Execute lists the user's refunds.
func (uc *ListRefundsUseCase) Execute(ctx context.Context, input ListRefundsInput) (*ListRefundsOutput, error) {
	refunds, err := uc.refundRepo.List(ctx, adapter.RefundFilter{
		UserID:    input.UserID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}

	return &ListRefundsOutput{
		Refunds: refunds,
	}, nil
}
