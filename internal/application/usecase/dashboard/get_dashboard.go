// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

// GetDashboardInput represents the input for building the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
	ViewID string
	Filter valueobject.DashboardFilter
	TopN   int // Optional, defaults to DefaultTopN
}

// GetDashboardOutput represents the output of building the dashboard.
type GetDashboardOutput struct {
	Generation int64
	Result     *DashboardResult
}

// DashboardResult is the combined output of every aggregator for one fetch cycle.
type DashboardResult struct {
	StartDate  string
	EndDate    string
	ProductIDs []string

	Daily       []DailySummary
	Accumulated []AccumulatedSummary
	Totals      PeriodTotals
	Coverage    float64
	Monthly     []MonthlyBalance

	Platforms           []SalesByPlatform
	Weekdays            []SalesBucket
	Hours               []SalesBucket
	ExpenseDistribution []ExpenseDistribution
	FixedExpenses       decimal.Decimal
	VariableExpenses    decimal.Decimal

	TopProducts          []TopProduct
	TopPlatforms         []SalesByPlatform
	BusiestWeekdays      []SalesBucket
	BusiestHours         []SalesBucket
	TopExpenseCategories []ExpenseDistribution

	// Products populates the product filter.
	Products []ProductRecord

	SaleCount    int
	ExpenseCount int
	RefundCount  int
}

// Records holds the rows of one fetch cycle.
type Records struct {
	Sales    []SaleRecord
	Expenses []ExpenseRecord
	Refunds  []RefundRecord
	Products []ProductRecord
}

// GetDashboardUseCase runs one dashboard fetch cycle: parallel reads, then aggregation.
type GetDashboardUseCase struct {
	recordStore RecordStore
	generations GenerationCounter
	states      StateStore
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	recordStore RecordStore,
	generations GenerationCounter,
	states StateStore,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		recordStore: recordStore,
		generations: generations,
		states:      states,
	}
}

// Execute builds the dashboard for the given filter.
// The previous result of the viewer is discarded as soon as the cycle starts.
// If a newer cycle starts before this one finishes, the result is dropped and
// ErrCodeSuperseded is returned.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	// Validate input
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	key := NewViewKey(input.UserID, input.ViewID)

	generation, err := uc.generations.Next(ctx, key)
	if err != nil {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeDashboardInternalError,
			"failed to start dashboard cycle",
			err,
		)
	}

	uc.states.Set(key, DashboardState{
		Status:     DashboardStatusLoading,
		Generation: generation,
		UpdatedAt:  time.Now().UTC(),
	})

	records, fetchErr := uc.fetchRecords(ctx, input)

	if uc.isSuperseded(ctx, key, generation) {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeSuperseded,
			"dashboard request superseded by a newer filter",
			domainerror.ErrDashboardSuperseded,
		)
	}

	if fetchErr != nil {
		uc.states.Set(key, DashboardState{
			Status:     DashboardStatusError,
			Generation: generation,
			Error:      fetchErr.Error(),
			UpdatedAt:  time.Now().UTC(),
		})
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeFetchFailed,
			fetchErr.Error(),
			domainerror.ErrDashboardFetchFailed,
		)
	}

	result := BuildDashboard(input.Filter, records, input.TopN)

	uc.states.Set(key, DashboardState{
		Status:     DashboardStatusReady,
		Generation: generation,
		Result:     result,
		UpdatedAt:  time.Now().UTC(),
	})

	return &GetDashboardOutput{
		Generation: generation,
		Result:     result,
	}, nil
}

// fetchRecords issues the four reads concurrently. The first failure cancels
// the others and is returned unchanged.
func (uc *GetDashboardUseCase) fetchRecords(ctx context.Context, input GetDashboardInput) (*Records, error) {
	var records Records
	dateRange := input.Filter.DateRange()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sales, err := uc.recordStore.FetchSales(gctx, input.UserID, dateRange, input.Filter.ProductIDs())
		records.Sales = sales
		return err
	})

	g.Go(func() error {
		expenses, err := uc.recordStore.FetchExpenses(gctx, input.UserID, dateRange)
		records.Expenses = expenses
		return err
	})

	g.Go(func() error {
		refunds, err := uc.recordStore.FetchRefunds(gctx, input.UserID, dateRange)
		records.Refunds = refunds
		return err
	})

	g.Go(func() error {
		products, err := uc.recordStore.FetchProducts(gctx, input.UserID)
		records.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &records, nil
}

// isSuperseded reports whether a newer cycle was started for the viewer.
func (uc *GetDashboardUseCase) isSuperseded(ctx context.Context, key ViewKey, generation int64) bool {
	current, err := uc.generations.Current(ctx, key)
	if err != nil {
		slog.Warn("Failed to read dashboard generation",
			"error", err,
			"view", key.String(),
			"generation", generation,
		)
		return false
	}
	return current > generation
}

// validateInput validates the input parameters.
func (uc *GetDashboardUseCase) validateInput(input GetDashboardInput) error {
	dateRange := input.Filter.DateRange()

	if dateRange.Start().IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingStartDate,
			"start_date is required",
			domainerror.ErrMissingStartDate,
		)
	}

	if dateRange.End().IsZero() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeMissingEndDate,
			"end_date is required",
			domainerror.ErrMissingEndDate,
		)
	}

	if !dateRange.IsValid() {
		return domainerror.NewDashboardError(
			domainerror.ErrCodeInvalidDateRange,
			"end_date must not be before start_date",
			domainerror.ErrInvalidDateRange,
		)
	}

	return nil
}

// BuildDashboard runs every aggregator over one cycle's records.
func BuildDashboard(filter valueobject.DashboardFilter, records *Records, topN int) *DashboardResult {
	if topN <= 0 {
		topN = DefaultTopN
	}

	daily := AggregateDaily(records.Sales, records.Expenses, records.Refunds)
	totals := SumPeriod(daily)
	platforms := GroupByPlatform(records.Sales, records.Refunds)
	weekdays := GroupByWeekday(records.Sales)
	hours := GroupByHour(records.Sales)
	distribution := DistributeExpenses(records.Expenses)

	products := records.Products
	if products == nil {
		products = []ProductRecord{}
	}

	return &DashboardResult{
		StartDate:  filter.DateRange().StartString(),
		EndDate:    filter.DateRange().EndString(),
		ProductIDs: filter.ProductIDs(),

		Daily:       daily,
		Accumulated: Accumulate(daily),
		Totals:      totals,
		Coverage:    CoverageIndex(totals),
		Monthly:     BalanceByMonth(daily),

		Platforms:           platforms,
		Weekdays:            weekdays,
		Hours:               hours,
		ExpenseDistribution: distribution,
		FixedExpenses:       ExpenseSubtotal(distribution, entity.ExpenseTypeFixed),
		VariableExpenses:    ExpenseSubtotal(distribution, entity.ExpenseTypeVariable),

		TopProducts:          TopProducts(records.Sales, topN),
		TopPlatforms:         TopPlatforms(platforms, topN),
		BusiestWeekdays:      BusiestWeekdays(weekdays, topN),
		BusiestHours:         BusiestHours(hours, topN),
		TopExpenseCategories: TopExpenseCategories(distribution, topN),

		Products: products,

		SaleCount:    len(records.Sales),
		ExpenseCount: len(records.Expenses),
		RefundCount:  len(records.Refunds),
	}
}
