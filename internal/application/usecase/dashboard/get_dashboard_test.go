package dashboard

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/sales-tracker/backend/internal/domain/error"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

type fakeRecordStore struct {
	mu sync.Mutex

	sales    []SaleRecord
	expenses []ExpenseRecord
	refunds  []RefundRecord
	products []ProductRecord

	salesErr    error
	expensesErr error

	onFetchSales func()
	productIDs   []string
}

func (s *fakeRecordStore) FetchSales(_ context.Context, _ uuid.UUID, _ valueobject.DateRange, productIDs []string) ([]SaleRecord, error) {
	s.mu.Lock()
	s.productIDs = productIDs
	s.mu.Unlock()
	if s.onFetchSales != nil {
		s.onFetchSales()
	}
	return s.sales, s.salesErr
}

func (s *fakeRecordStore) FetchExpenses(_ context.Context, _ uuid.UUID, _ valueobject.DateRange) ([]ExpenseRecord, error) {
	return s.expenses, s.expensesErr
}

func (s *fakeRecordStore) FetchRefunds(_ context.Context, _ uuid.UUID, _ valueobject.DateRange) ([]RefundRecord, error) {
	return s.refunds, nil
}

func (s *fakeRecordStore) FetchProducts(_ context.Context, _ uuid.UUID) ([]ProductRecord, error) {
	return s.products, nil
}

func (s *fakeRecordStore) GetSalesDateRange(_ context.Context, _ uuid.UUID) (*SalesDateRange, error) {
	if len(s.sales) == 0 {
		return &SalesDateRange{}, nil
	}
	oldest, newest := s.sales[0].Date, s.sales[0].Date
	for _, sale := range s.sales {
		if sale.Date.Before(oldest) {
			oldest = sale.Date
		}
		if sale.Date.After(newest) {
			newest = sale.Date
		}
	}
	return &SalesDateRange{OldestDate: &oldest, NewestDate: &newest, TotalSales: len(s.sales)}, nil
}

func testFilter(productIDs ...string) valueobject.DashboardFilter {
	return valueobject.NewDashboardFilter(
		valueobject.NewDateRange(day("2024-01-01"), day("2024-01-31")),
		productIDs,
	)
}

func scenarioStore() *fakeRecordStore {
	return &fakeRecordStore{
		sales: []SaleRecord{
			{Date: day("2024-01-01"), Time: "09:15", ProductID: "p1", ProductName: "Curso", PlatformID: "hotmart", Quantity: 1, NetAmount: amount(100)},
			{Date: day("2024-01-02"), Time: "20:00", ProductID: "p1", ProductName: "Curso", PlatformID: "eduzz", Quantity: 1, NetAmount: amount(200)},
		},
		expenses: []ExpenseRecord{
			{Date: day("2024-01-01"), CategoryID: "c1", CategoryName: "Anúncios", Type: "variable", Amount: amount(30)},
		},
		products: []ProductRecord{{ID: "p1", Name: "Curso"}},
	}
}

func dashboardErrorCode(t *testing.T, err error) domainerror.DashboardErrorCode {
	t.Helper()
	var dashErr *domainerror.DashboardError
	if !errors.As(err, &dashErr) {
		t.Fatalf("expected DashboardError, got %v", err)
	}
	return dashErr.Code
}

func TestGetDashboardUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("builds the combined result and records a ready state", func(t *testing.T) {
		states := NewInMemoryStateStore()
		uc := NewGetDashboardUseCase(scenarioStore(), NewInMemoryGenerationCounter(), states)

		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Filter: testFilter()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result := output.Result
		if output.Generation != 1 {
			t.Errorf("expected generation 1, got %d", output.Generation)
		}
		if len(result.Daily) != 2 || len(result.Accumulated) != 2 {
			t.Errorf("expected 2 daily and accumulated rows, got %d/%d", len(result.Daily), len(result.Accumulated))
		}
		assertDecimal(t, "total revenue", result.Totals.TotalRevenue, dec(300))
		assertDecimal(t, "total profit", result.Totals.TotalProfit, dec(270))
		assertDecimal(t, "variable expenses", result.VariableExpenses, dec(30))
		if len(result.Weekdays) != 7 || len(result.Hours) != 4 {
			t.Errorf("expected 7/4 buckets, got %d/%d", len(result.Weekdays), len(result.Hours))
		}
		if len(result.Products) != 1 || result.Products[0].ID != "p1" {
			t.Errorf("expected product list to be passed through, got %+v", result.Products)
		}
		if result.StartDate != "2024-01-01" || result.EndDate != "2024-01-31" {
			t.Errorf("unexpected range %s..%s", result.StartDate, result.EndDate)
		}

		state, ok := states.Get(NewViewKey(userID, ""))
		if !ok || state.Status != DashboardStatusReady || state.Result != result {
			t.Errorf("expected ready state holding the result, got %+v", state)
		}
	})

	t.Run("passes the product filter to the sales read", func(t *testing.T) {
		store := scenarioStore()
		uc := NewGetDashboardUseCase(store, NewInMemoryGenerationCounter(), NewInMemoryStateStore())

		_, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Filter: testFilter("p1", "p2")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.productIDs) != 2 {
			t.Errorf("expected 2 product ids, got %v", store.productIDs)
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		uc := NewGetDashboardUseCase(scenarioStore(), NewInMemoryGenerationCounter(), NewInMemoryStateStore())

		tests := []struct {
			name   string
			filter valueobject.DashboardFilter
			code   domainerror.DashboardErrorCode
		}{
			{
				"missing start",
				valueobject.NewDashboardFilter(valueobject.NewDateRange(day("0001-01-01"), day("2024-01-01")), nil),
				domainerror.ErrCodeMissingStartDate,
			},
			{
				"missing end",
				valueobject.NewDashboardFilter(valueobject.NewDateRange(day("2024-01-01"), day("0001-01-01")), nil),
				domainerror.ErrCodeMissingEndDate,
			},
			{
				"end before start",
				valueobject.NewDashboardFilter(valueobject.NewDateRange(day("2024-02-01"), day("2024-01-01")), nil),
				domainerror.ErrCodeInvalidDateRange,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Filter: tt.filter})
				if code := dashboardErrorCode(t, err); code != tt.code {
					t.Errorf("expected code %s, got %s", tt.code, code)
				}
			})
		}
	})

	t.Run("fetch failure is terminal and surfaced verbatim", func(t *testing.T) {
		store := scenarioStore()
		store.expensesErr = errors.New("permission denied for table expenses")
		states := NewInMemoryStateStore()
		uc := NewGetDashboardUseCase(store, NewInMemoryGenerationCounter(), states)

		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, ViewID: "fail", Filter: testFilter()})
		if output != nil {
			t.Error("expected no partial result")
		}
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeFetchFailed {
			t.Errorf("expected fetch failed code, got %s", code)
		}
		if !strings.HasPrefix(err.Error(), "permission denied for table expenses") {
			t.Errorf("expected store message verbatim, got %q", err.Error())
		}
		if !errors.Is(err, domainerror.ErrDashboardFetchFailed) {
			t.Error("expected error to wrap ErrDashboardFetchFailed")
		}

		state, _ := states.Get(NewViewKey(userID, "fail"))
		if state.Status != DashboardStatusError || state.Result != nil {
			t.Errorf("expected error state without result, got %+v", state)
		}
		if state.Error != "permission denied for table expenses" {
			t.Errorf("unexpected state error %q", state.Error)
		}
	})

	t.Run("superseded cycle is discarded", func(t *testing.T) {
		store := scenarioStore()
		generations := NewInMemoryGenerationCounter()
		states := NewInMemoryStateStore()
		uc := NewGetDashboardUseCase(store, generations, states)
		key := NewViewKey(userID, "race")

		// A newer filter change lands while the first cycle is still fetching.
		store.onFetchSales = func() {
			store.onFetchSales = nil
			newer, _ := generations.Next(context.Background(), key)
			states.Set(key, DashboardState{Status: DashboardStatusLoading, Generation: newer})
		}

		_, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, ViewID: "race", Filter: testFilter()})
		if code := dashboardErrorCode(t, err); code != domainerror.ErrCodeSuperseded {
			t.Errorf("expected superseded code, got %s", code)
		}

		state, _ := states.Get(key)
		if state.Generation != 2 || state.Status != DashboardStatusLoading {
			t.Errorf("expected the newer loading state to survive, got %+v", state)
		}

		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, ViewID: "race", Filter: testFilter()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Generation != 3 {
			t.Errorf("expected generation 3, got %d", output.Generation)
		}
	})

	t.Run("empty records still yield full bucket sets", func(t *testing.T) {
		uc := NewGetDashboardUseCase(&fakeRecordStore{}, NewInMemoryGenerationCounter(), NewInMemoryStateStore())

		output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: userID, Filter: testFilter()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result := output.Result
		if len(result.Daily) != 0 || len(result.Accumulated) != 0 {
			t.Error("expected empty daily and accumulated rows")
		}
		if len(result.Weekdays) != 7 || len(result.Hours) != 4 {
			t.Errorf("expected 7/4 buckets, got %d/%d", len(result.Weekdays), len(result.Hours))
		}
		if !result.Totals.TotalRevenue.IsZero() || !result.Totals.TotalRefunds.IsZero() {
			t.Error("expected zero totals")
		}
		if result.Products == nil {
			t.Error("expected empty product list, got nil")
		}
	})
}

func TestGetDashboardStateUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	states := NewInMemoryStateStore()
	uc := NewGetDashboardStateUseCase(states)

	t.Run("viewer without a cycle is loading", func(t *testing.T) {
		output, _ := uc.Execute(context.Background(), GetDashboardStateInput{UserID: userID})
		if output.Status != DashboardStatusLoading || !output.Loading {
			t.Errorf("expected loading, got %+v", output)
		}
	})

	t.Run("returns the latest snapshot", func(t *testing.T) {
		facade := NewGetDashboardUseCase(scenarioStore(), NewInMemoryGenerationCounter(), states)
		if _, err := facade.Execute(context.Background(), GetDashboardInput{UserID: userID, Filter: testFilter()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, _ := uc.Execute(context.Background(), GetDashboardStateInput{UserID: userID, ViewID: valueobject.DefaultViewID})
		if output.Status != DashboardStatusReady || output.Loading || output.Result == nil {
			t.Errorf("expected ready snapshot with result, got %+v", output)
		}
	})
}

func TestInMemoryStateStore_DiscardsStaleSnapshots(t *testing.T) {
	store := NewInMemoryStateStore()
	key := NewViewKey(uuid.New(), "")

	if !store.Set(key, DashboardState{Status: DashboardStatusLoading, Generation: 2}) {
		t.Fatal("expected first snapshot to be stored")
	}
	if store.Set(key, DashboardState{Status: DashboardStatusReady, Generation: 1}) {
		t.Error("expected older generation to be discarded")
	}
	state, _ := store.Get(key)
	if state.Generation != 2 {
		t.Errorf("expected generation 2, got %d", state.Generation)
	}
}

func TestInMemoryGenerationCounter_Concurrent(t *testing.T) {
	counter := NewInMemoryGenerationCounter()
	key := NewViewKey(uuid.New(), "default")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = counter.Next(context.Background(), key)
		}()
	}
	wg.Wait()

	current, _ := counter.Current(context.Background(), key)
	if current != 50 {
		t.Errorf("expected 50, got %d", current)
	}
}

type fakeExporter struct {
	result *DashboardResult
}

func (e *fakeExporter) ContentType() string   { return "text/plain" }
func (e *fakeExporter) FileExtension() string { return ".txt" }
func (e *fakeExporter) Export(_ context.Context, result *DashboardResult, w io.Writer) error {
	e.result = result
	_, err := io.WriteString(w, "report")
	return err
}

func TestExportDashboardUseCase_Execute(t *testing.T) {
	exporter := &fakeExporter{}
	facade := NewGetDashboardUseCase(scenarioStore(), NewInMemoryGenerationCounter(), NewInMemoryStateStore())
	uc := NewExportDashboardUseCase(facade, exporter)

	output, err := uc.Execute(context.Background(), GetDashboardInput{UserID: uuid.New(), Filter: testFilter()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.FileName != "dashboard_2024-01-01_2024-01-31.txt" {
		t.Errorf("unexpected file name %s", output.FileName)
	}
	if string(output.Content) != "report" || output.ContentType != "text/plain" {
		t.Errorf("unexpected output %+v", output)
	}
	if exporter.result == nil || exporter.result.SaleCount != 2 {
		t.Error("expected exporter to receive the dashboard result")
	}
}

func TestGetDataRangeUseCase_Execute(t *testing.T) {
	uc := NewGetDataRangeUseCase(scenarioStore())
	output, err := uc.Execute(context.Background(), GetDataRangeInput{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !output.HasData || output.TotalSales != 2 {
		t.Errorf("unexpected output %+v", output)
	}
	if output.OldestDate.Format("2006-01-02") != "2024-01-01" {
		t.Errorf("unexpected oldest date %s", output.OldestDate)
	}

	empty, _ := NewGetDataRangeUseCase(&fakeRecordStore{}).Execute(context.Background(), GetDataRangeInput{})
	if empty.HasData {
		t.Error("expected no data")
	}
}
