// Package dashboard contains dashboard-related use cases.
package dashboard

import "github.com/shopspring/decimal"

// PeriodTotals is the aggregate over the whole filtered window.
type PeriodTotals struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	TotalProfit   decimal.Decimal
	TotalRefunds  decimal.Decimal
}

// SumPeriod sums the daily summaries. Empty input yields all zeros.
func SumPeriod(daily []DailySummary) PeriodTotals {
	totals := PeriodTotals{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		TotalProfit:   decimal.Zero,
		TotalRefunds:  decimal.Zero,
	}

	for _, day := range daily {
		totals.TotalRevenue = totals.TotalRevenue.Add(day.Revenue)
		totals.TotalExpenses = totals.TotalExpenses.Add(day.Expenses)
		totals.TotalProfit = totals.TotalProfit.Add(day.Profit)
		totals.TotalRefunds = totals.TotalRefunds.Add(day.Refunds)
	}

	return totals
}
