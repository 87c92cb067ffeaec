// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DailySummary is the net result of one calendar day.
// Profit always equals Revenue - Expenses; refunds are netted into Revenue.
type DailySummary struct {
	Date     string // YYYY-MM-DD
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Profit   decimal.Decimal
	Refunds  decimal.Decimal
}

// AggregateDaily folds sales, expenses and refunds into one summary per date
// with activity, sorted ascending by date. Days without rows are omitted.
// A day with only refunds yields negative revenue.
func AggregateDaily(sales []SaleRecord, expenses []ExpenseRecord, refunds []RefundRecord) []DailySummary {
	byDate := make(map[string]*DailySummary)
	touch := func(date string) *DailySummary {
		day, ok := byDate[date]
		if !ok {
			day = &DailySummary{
				Date:     date,
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
				Profit:   decimal.Zero,
				Refunds:  decimal.Zero,
			}
			byDate[date] = day
		}
		return day
	}

	for _, s := range sales {
		amount := amountOf(s.NetAmount)
		day := touch(s.dateKey())
		day.Revenue = day.Revenue.Add(amount)
		day.Profit = day.Profit.Add(amount)
	}

	for _, e := range expenses {
		amount := amountOf(e.Amount)
		day := touch(e.dateKey())
		day.Expenses = day.Expenses.Add(amount)
		day.Profit = day.Profit.Sub(amount)
	}

	for _, r := range refunds {
		amount := amountOf(r.Amount)
		day := touch(r.dateKey())
		day.Refunds = day.Refunds.Add(amount)
		day.Revenue = day.Revenue.Sub(amount)
		day.Profit = day.Profit.Sub(amount)
	}

	daily := make([]DailySummary, 0, len(byDate))
	for _, day := range byDate {
		daily = append(daily, *day)
	}

	// ISO dates sort lexicographically
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date < daily[j].Date
	})

	return daily
}
