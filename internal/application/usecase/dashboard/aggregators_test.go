package dashboard

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func amount(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func assertDecimal(t *testing.T, field string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Errorf("%s: expected %s, got %s", field, want, got)
	}
}

func assertPercentSum(t *testing.T, percentages []float64) {
	t.Helper()
	sum := 0.0
	for _, p := range percentages {
		sum += p
	}
	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("expected percentages to sum to 100, got %f", sum)
	}
}

func TestAggregateDaily(t *testing.T) {
	t.Run("sales and expenses across two days", func(t *testing.T) {
		sales := []SaleRecord{
			{Date: day("2024-01-01"), NetAmount: amount(100)},
			{Date: day("2024-01-02"), NetAmount: amount(200)},
		}
		expenses := []ExpenseRecord{
			{Date: day("2024-01-01"), Amount: amount(30)},
		}

		daily := AggregateDaily(sales, expenses, nil)

		if len(daily) != 2 {
			t.Fatalf("expected 2 days, got %d", len(daily))
		}
		if daily[0].Date != "2024-01-01" || daily[1].Date != "2024-01-02" {
			t.Errorf("unexpected order: %s, %s", daily[0].Date, daily[1].Date)
		}
		assertDecimal(t, "day 1 revenue", daily[0].Revenue, dec(100))
		assertDecimal(t, "day 1 expenses", daily[0].Expenses, dec(30))
		assertDecimal(t, "day 1 profit", daily[0].Profit, dec(70))
		assertDecimal(t, "day 1 refunds", daily[0].Refunds, decimal.Zero)
		assertDecimal(t, "day 2 revenue", daily[1].Revenue, dec(200))
		assertDecimal(t, "day 2 expenses", daily[1].Expenses, decimal.Zero)
		assertDecimal(t, "day 2 profit", daily[1].Profit, dec(200))
	})

	t.Run("refund-only day yields negative revenue", func(t *testing.T) {
		refunds := []RefundRecord{{Date: day("2024-01-01"), Amount: amount(40)}}

		daily := AggregateDaily(nil, nil, refunds)

		if len(daily) != 1 {
			t.Fatalf("expected 1 day, got %d", len(daily))
		}
		assertDecimal(t, "revenue", daily[0].Revenue, dec(-40))
		assertDecimal(t, "expenses", daily[0].Expenses, decimal.Zero)
		assertDecimal(t, "profit", daily[0].Profit, dec(-40))
		assertDecimal(t, "refunds", daily[0].Refunds, dec(40))
	})

	t.Run("input order does not matter", func(t *testing.T) {
		sales := []SaleRecord{
			{Date: day("2024-03-10"), NetAmount: amount(1)},
			{Date: day("2024-01-05"), NetAmount: amount(2)},
			{Date: day("2024-02-20"), NetAmount: amount(3)},
		}

		daily := AggregateDaily(sales, nil, nil)

		want := []string{"2024-01-05", "2024-02-20", "2024-03-10"}
		for i, d := range daily {
			if d.Date != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], d.Date)
			}
		}
	})

	t.Run("null amounts count as zero", func(t *testing.T) {
		sales := []SaleRecord{
			{Date: day("2024-01-01"), NetAmount: decimal.NullDecimal{}},
			{Date: day("2024-01-01"), NetAmount: amount(10)},
		}
		expenses := []ExpenseRecord{{Date: day("2024-01-01")}}

		daily := AggregateDaily(sales, expenses, nil)

		if len(daily) != 1 {
			t.Fatalf("expected 1 day, got %d", len(daily))
		}
		assertDecimal(t, "revenue", daily[0].Revenue, dec(10))
		assertDecimal(t, "profit", daily[0].Profit, dec(10))
	})

	t.Run("profit equals revenue minus expenses", func(t *testing.T) {
		daily := AggregateDaily(
			[]SaleRecord{{Date: day("2024-01-01"), NetAmount: amount(500)}},
			[]ExpenseRecord{{Date: day("2024-01-01"), Amount: amount(120.5)}},
			[]RefundRecord{{Date: day("2024-01-01"), Amount: amount(50)}},
		)
		for _, d := range daily {
			assertDecimal(t, "profit", d.Profit, d.Revenue.Sub(d.Expenses))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		daily := AggregateDaily(nil, nil, nil)
		if daily == nil || len(daily) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", daily)
		}
	})
}

func TestAccumulate(t *testing.T) {
	daily := AggregateDaily(
		[]SaleRecord{
			{Date: day("2024-01-01"), NetAmount: amount(100)},
			{Date: day("2024-01-02"), NetAmount: amount(200)},
		},
		[]ExpenseRecord{{Date: day("2024-01-01"), Amount: amount(30)}},
		nil,
	)

	accumulated := Accumulate(daily)

	if len(accumulated) != len(daily) {
		t.Fatalf("expected %d rows, got %d", len(daily), len(accumulated))
	}
	assertDecimal(t, "cumRevenue[0]", accumulated[0].CumRevenue, dec(100))
	assertDecimal(t, "cumExpenses[0]", accumulated[0].CumExpenses, dec(30))
	assertDecimal(t, "cumProfit[0]", accumulated[0].CumProfit, dec(70))
	assertDecimal(t, "cumRevenue[1]", accumulated[1].CumRevenue, dec(300))
	assertDecimal(t, "cumExpenses[1]", accumulated[1].CumExpenses, dec(30))
	assertDecimal(t, "cumProfit[1]", accumulated[1].CumProfit, dec(270))

	t.Run("running sum definition holds", func(t *testing.T) {
		rows := []DailySummary{
			{Date: "2024-01-01", Revenue: dec(10), Expenses: dec(1), Profit: dec(9)},
			{Date: "2024-01-02", Revenue: dec(-40), Expenses: dec(0), Profit: dec(-40)},
			{Date: "2024-01-03", Revenue: dec(25), Expenses: dec(5), Profit: dec(20)},
		}
		acc := Accumulate(rows)
		for i := 1; i < len(acc); i++ {
			assertDecimal(t, "cumRevenue", acc[i].CumRevenue, acc[i-1].CumRevenue.Add(rows[i].Revenue))
			assertDecimal(t, "cumExpenses", acc[i].CumExpenses, acc[i-1].CumExpenses.Add(rows[i].Expenses))
			assertDecimal(t, "cumProfit", acc[i].CumProfit, acc[i-1].CumProfit.Add(rows[i].Profit))
		}
		if !acc[1].CumRevenue.LessThan(acc[0].CumRevenue) {
			t.Error("expected accumulated revenue to dip after a refund day")
		}
	})

	t.Run("keeps caller order", func(t *testing.T) {
		rows := []DailySummary{{Date: "2024-01-02"}, {Date: "2024-01-01"}}
		acc := Accumulate(rows)
		if acc[0].Date != "2024-01-02" || acc[1].Date != "2024-01-01" {
			t.Errorf("expected input order to be preserved, got %s, %s", acc[0].Date, acc[1].Date)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if acc := Accumulate(nil); len(acc) != 0 {
			t.Errorf("expected empty output, got %d rows", len(acc))
		}
	})
}

func TestSumPeriod(t *testing.T) {
	t.Run("scenario totals", func(t *testing.T) {
		daily := AggregateDaily(
			[]SaleRecord{
				{Date: day("2024-01-01"), NetAmount: amount(100)},
				{Date: day("2024-01-02"), NetAmount: amount(200)},
			},
			[]ExpenseRecord{{Date: day("2024-01-01"), Amount: amount(30)}},
			nil,
		)
		totals := SumPeriod(daily)
		assertDecimal(t, "totalRevenue", totals.TotalRevenue, dec(300))
		assertDecimal(t, "totalExpenses", totals.TotalExpenses, dec(30))
		assertDecimal(t, "totalProfit", totals.TotalProfit, dec(270))
		assertDecimal(t, "totalRefunds", totals.TotalRefunds, decimal.Zero)
	})

	t.Run("empty input yields zeros", func(t *testing.T) {
		totals := SumPeriod(AggregateDaily(nil, nil, nil))
		assertDecimal(t, "totalRevenue", totals.TotalRevenue, decimal.Zero)
		assertDecimal(t, "totalExpenses", totals.TotalExpenses, decimal.Zero)
		assertDecimal(t, "totalProfit", totals.TotalProfit, decimal.Zero)
		assertDecimal(t, "totalRefunds", totals.TotalRefunds, decimal.Zero)
	})

	t.Run("matches the sum of raw rows", func(t *testing.T) {
		sales := []SaleRecord{
			{Date: day("2024-01-01"), NetAmount: amount(10.25)},
			{Date: day("2024-01-03"), NetAmount: amount(99.99)},
			{Date: day("2024-01-03"), NetAmount: amount(0.01)},
		}
		expenses := []ExpenseRecord{
			{Date: day("2024-01-02"), Amount: amount(12)},
			{Date: day("2024-01-03"), Amount: amount(8.5)},
		}
		refunds := []RefundRecord{{Date: day("2024-01-04"), Amount: amount(5)}}

		totals := SumPeriod(AggregateDaily(sales, expenses, refunds))

		assertDecimal(t, "totalRevenue", totals.TotalRevenue, dec(105.25))
		assertDecimal(t, "totalExpenses", totals.TotalExpenses, dec(20.5))
		assertDecimal(t, "totalProfit", totals.TotalProfit, dec(84.75))
		assertDecimal(t, "totalRefunds", totals.TotalRefunds, dec(5))
	})
}

func TestGroupByPlatform(t *testing.T) {
	sales := []SaleRecord{
		{PlatformID: "hotmart", Quantity: 2, NetAmount: amount(100)},
		{PlatformID: "eduzz", Quantity: 1, NetAmount: amount(300)},
		{PlatformID: "hotmart", Quantity: 3, NetAmount: amount(100)},
	}
	refunds := []RefundRecord{
		{PlatformID: "hotmart", Amount: amount(20)},
		{PlatformID: "monetizze", Amount: amount(10)},
	}

	platforms := GroupByPlatform(sales, refunds)

	if len(platforms) != 3 {
		t.Fatalf("expected 3 platforms, got %d", len(platforms))
	}

	want := []string{"hotmart", "eduzz", "monetizze"}
	for i, p := range platforms {
		if p.Platform != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], p.Platform)
		}
	}

	if platforms[0].Quantity != 5 {
		t.Errorf("expected hotmart quantity 5, got %d", platforms[0].Quantity)
	}
	assertDecimal(t, "hotmart revenue", platforms[0].Revenue, dec(200))
	assertDecimal(t, "hotmart refunds", platforms[0].Refunds, dec(20))
	assertDecimal(t, "monetizze refunds", platforms[2].Refunds, dec(10))

	if math.Abs(platforms[0].Percentage-40) > 1e-9 {
		t.Errorf("expected hotmart 40%%, got %f", platforms[0].Percentage)
	}
	if platforms[2].Percentage != 0 {
		t.Errorf("expected refund-only platform at 0%%, got %f", platforms[2].Percentage)
	}
	assertPercentSum(t, []float64{platforms[0].Percentage, platforms[1].Percentage, platforms[2].Percentage})

	t.Run("zero revenue gives zero percentages", func(t *testing.T) {
		platforms := GroupByPlatform([]SaleRecord{{PlatformID: "a", NetAmount: amount(0)}}, nil)
		if platforms[0].Percentage != 0 || math.IsNaN(platforms[0].Percentage) {
			t.Errorf("expected 0, got %f", platforms[0].Percentage)
		}
	})
}

func TestGroupByWeekday(t *testing.T) {
	t.Run("always seven buckets", func(t *testing.T) {
		buckets := GroupByWeekday(nil)
		if len(buckets) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(buckets))
		}
		for i, b := range buckets {
			if b.Label != weekdayLabels[i] {
				t.Errorf("bucket %d: expected label %s, got %s", i, weekdayLabels[i], b.Label)
			}
			if b.Quantity != 0 || !b.Total.IsZero() || b.Percentage != 0 {
				t.Errorf("bucket %d: expected zero-filled bucket, got %+v", i, b)
			}
		}
	})

	t.Run("counts line items and averages tickets", func(t *testing.T) {
		// 2024-01-01 is a Monday, 2024-01-07 a Sunday
		sales := []SaleRecord{
			{Date: day("2024-01-01"), Quantity: 5, NetAmount: amount(100)},
			{Date: day("2024-01-01"), Quantity: 1, NetAmount: amount(50)},
			{Date: day("2024-01-07"), Quantity: 2, NetAmount: amount(30)},
		}

		buckets := GroupByWeekday(sales)

		monday := buckets[time.Monday]
		if monday.Label != "Seg" {
			t.Errorf("expected Seg, got %s", monday.Label)
		}
		if monday.Quantity != 2 {
			t.Errorf("expected 2 line items on monday, got %d", monday.Quantity)
		}
		assertDecimal(t, "monday total", monday.Total, dec(150))
		assertDecimal(t, "monday ticket", monday.TicketAverage, dec(75))

		sunday := buckets[time.Sunday]
		if sunday.Quantity != 1 {
			t.Errorf("expected 1 line item on sunday, got %d", sunday.Quantity)
		}

		percentages := make([]float64, len(buckets))
		for i, b := range buckets {
			percentages[i] = b.Percentage
		}
		assertPercentSum(t, percentages)
	})
}

func TestGroupByHour(t *testing.T) {
	t.Run("always four buckets", func(t *testing.T) {
		buckets := GroupByHour(nil)
		if len(buckets) != 4 {
			t.Fatalf("expected 4 buckets, got %d", len(buckets))
		}
		if buckets[0].Label != "00:00 - 05:59" || buckets[3].Label != "18:00 - 23:59" {
			t.Errorf("unexpected labels: %s, %s", buckets[0].Label, buckets[3].Label)
		}
	})

	tests := []struct {
		name   string
		time   string
		bucket int
		ok     bool
	}{
		{"midnight", "00:00", 0, true},
		{"end of dawn", "05:59:59", 0, true},
		{"morning", "06:00", 1, true},
		{"noon", "12:00:00", 2, true},
		{"evening", "18:30", 3, true},
		{"last minute", "23:59", 3, true},
		{"missing", "", 0, false},
		{"garbage", "noon", 0, false},
		{"hour out of range", "24:00", 0, false},
		{"minute out of range", "10:75", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buckets := GroupByHour([]SaleRecord{{Time: tt.time, NetAmount: amount(10)}})
			count := 0
			for i, b := range buckets {
				count += b.Quantity
				if tt.ok && i == tt.bucket && b.Quantity != 1 {
					t.Errorf("expected sale in bucket %d", tt.bucket)
				}
			}
			if !tt.ok && count != 0 {
				t.Errorf("expected sale to be skipped, got %d bucketed", count)
			}
		})
	}

	t.Run("percentages ignore unbucketed sales", func(t *testing.T) {
		buckets := GroupByHour([]SaleRecord{
			{Time: "08:00", NetAmount: amount(10)},
			{Time: "20:00", NetAmount: amount(10)},
			{Time: "", NetAmount: amount(10)},
		})
		if buckets[1].Percentage != 50 || buckets[3].Percentage != 50 {
			t.Errorf("expected 50/50, got %f/%f", buckets[1].Percentage, buckets[3].Percentage)
		}
	})
}

func TestDistributeExpenses(t *testing.T) {
	expenses := []ExpenseRecord{
		{CategoryID: "rent", CategoryName: "Aluguel", Type: "fixed", Amount: amount(1000)},
		{CategoryID: "ads", CategoryName: "Anúncios", Type: "variable", Amount: amount(300)},
		{CategoryID: "tools", CategoryName: "Ferramentas", Type: "fixed", Amount: amount(250)},
		{CategoryID: "", Type: "variable", Amount: amount(100)},
		{CategoryID: "fees", CategoryName: "Taxas", Type: "something-else", Amount: amount(100)},
		{CategoryID: "tools", CategoryName: "Ferramentas", Type: "fixed", Amount: amount(250)},
	}

	rows := DistributeExpenses(expenses)

	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	wantOrder := []struct {
		expenseType entity.ExpenseType
		id          string
	}{
		{entity.ExpenseTypeFixed, "rent"},
		{entity.ExpenseTypeFixed, "tools"},
		{entity.ExpenseTypeVariable, "ads"},
		{entity.ExpenseTypeVariable, UncategorizedID},
		{entity.ExpenseTypeVariable, "fees"},
	}
	for i, w := range wantOrder {
		if rows[i].Type != w.expenseType || rows[i].CategoryID != w.id {
			t.Errorf("position %d: expected %s/%s, got %s/%s", i, w.expenseType, w.id, rows[i].Type, rows[i].CategoryID)
		}
	}

	if rows[1].Count != 2 {
		t.Errorf("expected tools count 2, got %d", rows[1].Count)
	}
	if rows[3].CategoryName != UncategorizedName {
		t.Errorf("expected %s, got %s", UncategorizedName, rows[3].CategoryName)
	}

	// fixed subtotal 1500: rent 66.67%, tools 33.33%
	assertPercentSum(t, []float64{rows[0].Percentage, rows[1].Percentage})
	assertPercentSum(t, []float64{rows[2].Percentage, rows[3].Percentage, rows[4].Percentage})
	if math.Abs(rows[2].Percentage-60) > 1e-9 {
		t.Errorf("expected ads at 60%% of variable, got %f", rows[2].Percentage)
	}

	assertDecimal(t, "fixed subtotal", ExpenseSubtotal(rows, entity.ExpenseTypeFixed), dec(1500))
	assertDecimal(t, "variable subtotal", ExpenseSubtotal(rows, entity.ExpenseTypeVariable), dec(500))

	t.Run("empty input", func(t *testing.T) {
		if rows := DistributeExpenses(nil); len(rows) != 0 {
			t.Errorf("expected no rows, got %d", len(rows))
		}
	})
}

func TestTopN(t *testing.T) {
	sales := []SaleRecord{
		{ProductID: "a", ProductName: "Curso A", Quantity: 1, NetAmount: amount(10)},
		{ProductID: "b", ProductName: "Curso B", Quantity: 1, NetAmount: amount(50)},
		{ProductID: "c", Quantity: 1, NetAmount: amount(30)},
		{ProductID: "d", ProductName: "Curso D", Quantity: 1, NetAmount: amount(30)},
		{ProductID: "e", ProductName: "Curso E", Quantity: 1, NetAmount: amount(5)},
		{ProductID: "f", ProductName: "Curso F", Quantity: 1, NetAmount: amount(1)},
		{ProductID: "a", ProductName: "Curso A", Quantity: 2, NetAmount: amount(15)},
	}

	t.Run("defaults to five ranked by revenue", func(t *testing.T) {
		top := TopProducts(sales, 0)
		if len(top) != DefaultTopN {
			t.Fatalf("expected %d products, got %d", DefaultTopN, len(top))
		}
		want := []string{"b", "c", "d", "a", "e"}
		for i, p := range top {
			if p.ProductID != want[i] {
				t.Errorf("position %d: expected %s, got %s", i, want[i], p.ProductID)
			}
		}
		if top[1].ProductName != "c" {
			t.Errorf("expected product id as fallback name, got %s", top[1].ProductName)
		}
		if top[3].Quantity != 3 {
			t.Errorf("expected 3 units of a, got %d", top[3].Quantity)
		}
	})

	t.Run("does not mutate input", func(t *testing.T) {
		platforms := []SalesByPlatform{
			{Platform: "x", Revenue: dec(1)},
			{Platform: "y", Revenue: dec(3)},
			{Platform: "z", Revenue: dec(2)},
		}
		before := append([]SalesByPlatform(nil), platforms...)
		top := TopPlatforms(platforms, 2)
		if len(top) != 2 || top[0].Platform != "y" || top[1].Platform != "z" {
			t.Errorf("unexpected top platforms: %+v", top)
		}
		if !reflect.DeepEqual(before, platforms) {
			t.Error("expected input to be left untouched")
		}
	})

	t.Run("busiest buckets", func(t *testing.T) {
		buckets := GroupByHour([]SaleRecord{
			{Time: "20:00", NetAmount: amount(1)},
			{Time: "21:00", NetAmount: amount(1)},
			{Time: "09:00", NetAmount: amount(1)},
		})
		top := BusiestHours(buckets, 1)
		if len(top) != 1 || top[0].Index != 3 {
			t.Errorf("expected evening bucket first, got %+v", top)
		}
		if len(BusiestWeekdays(GroupByWeekday(nil), 10)) != 7 {
			t.Error("expected n larger than input to return every bucket")
		}
	})

	t.Run("expense categories across types", func(t *testing.T) {
		rows := DistributeExpenses([]ExpenseRecord{
			{CategoryID: "a", CategoryName: "A", Type: "fixed", Amount: amount(10)},
			{CategoryID: "b", CategoryName: "B", Type: "variable", Amount: amount(90)},
		})
		top := TopExpenseCategories(rows, 1)
		if len(top) != 1 || top[0].CategoryID != "b" {
			t.Errorf("expected b first, got %+v", top)
		}
	})
}

func TestBalanceByMonth(t *testing.T) {
	daily := AggregateDaily(
		[]SaleRecord{
			{Date: day("2024-02-10"), NetAmount: amount(100)},
			{Date: day("2024-01-15"), NetAmount: amount(50)},
			{Date: day("2024-01-20"), NetAmount: amount(25)},
		},
		[]ExpenseRecord{{Date: day("2024-02-01"), Amount: amount(40)}},
		nil,
	)

	months := BalanceByMonth(daily)

	if len(months) != 2 {
		t.Fatalf("expected 2 months, got %d", len(months))
	}
	if months[0].Month != "2024-01" || months[0].Label != "Jan 2024" {
		t.Errorf("unexpected first month: %s %s", months[0].Month, months[0].Label)
	}
	if months[1].Label != "Fev 2024" {
		t.Errorf("expected Fev 2024, got %s", months[1].Label)
	}
	assertDecimal(t, "january revenue", months[0].Revenue, dec(75))
	assertDecimal(t, "february balance", months[1].Balance, dec(60))
}

func TestCoverageIndex(t *testing.T) {
	tests := []struct {
		name     string
		revenue  float64
		expenses float64
		want     float64
	}{
		{"balanced", 100, 100, 50},
		{"no expenses", 100, 0, 100},
		{"nothing", 0, 0, 0},
		{"negative revenue", -40, 10, 0},
		{"three quarters", 300, 100, 75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CoverageIndex(PeriodTotals{TotalRevenue: dec(tt.revenue), TotalExpenses: dec(tt.expenses)})
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestAggregatorsAreIdempotent(t *testing.T) {
	sales := []SaleRecord{
		{Date: day("2024-01-02"), Time: "10:00", ProductID: "p", PlatformID: "hotmart", Quantity: 1, NetAmount: amount(97)},
		{Date: day("2024-01-01"), Time: "19:00", ProductID: "q", PlatformID: "eduzz", Quantity: 2, NetAmount: amount(194)},
	}
	expenses := []ExpenseRecord{{Date: day("2024-01-01"), CategoryID: "c", CategoryName: "C", Type: "fixed", Amount: amount(50)}}
	refunds := []RefundRecord{{Date: day("2024-01-02"), PlatformID: "hotmart", Amount: amount(97)}}

	records := &Records{Sales: sales, Expenses: expenses, Refunds: refunds}
	first := BuildDashboard(testFilter(), records, 3)
	second := BuildDashboard(testFilter(), records, 3)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical results for identical input")
	}
	if sales[0].Date != day("2024-01-02") {
		t.Error("expected input rows to be left untouched")
	}
}
