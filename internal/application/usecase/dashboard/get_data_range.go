// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GetDataRangeInput represents the input for getting data range.
type GetDataRangeInput struct {
	UserID uuid.UUID
}

// GetDataRangeOutput represents the output of getting data range.
type GetDataRangeOutput struct {
	OldestDate *time.Time
	NewestDate *time.Time
	TotalSales int
	HasData    bool
}

// GetDataRangeUseCase handles getting the date range of user's sales,
// used by clients to pick the initial dashboard filter.
type GetDataRangeUseCase struct {
	recordStore RecordStore
}

// NewGetDataRangeUseCase creates a new GetDataRangeUseCase instance.
func NewGetDataRangeUseCase(recordStore RecordStore) *GetDataRangeUseCase {
	return &GetDataRangeUseCase{
		recordStore: recordStore,
	}
}

// Execute retrieves the date range of user's sales.
func (uc *GetDataRangeUseCase) Execute(
	ctx context.Context,
	input GetDataRangeInput,
) (*GetDataRangeOutput, error) {
	dateRange, err := uc.recordStore.GetSalesDateRange(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	hasData := dateRange.OldestDate != nil && dateRange.NewestDate != nil

	return &GetDataRangeOutput{
		OldestDate: dateRange.OldestDate,
		NewestDate: dateRange.NewestDate,
		TotalSales: dateRange.TotalSales,
		HasData:    hasData,
	}, nil
}
