// Package dashboard contains dashboard-related use cases.
package dashboard

import "github.com/shopspring/decimal"

// AccumulatedSummary holds the running totals up to and including Date.
type AccumulatedSummary struct {
	Date        string
	CumRevenue  decimal.Decimal
	CumExpenses decimal.Decimal
	CumProfit   decimal.Decimal
}

// Accumulate produces running sums over daily in a single pass.
// The output has the same length and order as the input; callers sort first.
func Accumulate(daily []DailySummary) []AccumulatedSummary {
	accumulated := make([]AccumulatedSummary, len(daily))

	revenue, expenses, profit := decimal.Zero, decimal.Zero, decimal.Zero
	for i, day := range daily {
		revenue = revenue.Add(day.Revenue)
		expenses = expenses.Add(day.Expenses)
		profit = profit.Add(day.Profit)

		accumulated[i] = AccumulatedSummary{
			Date:        day.Date,
			CumRevenue:  revenue,
			CumExpenses: expenses,
			CumProfit:   profit,
		}
	}

	return accumulated
}
