// Package dashboard contains dashboard-related use cases.
package dashboard

// CoverageIndex returns how much of the combined revenue and expenses is
// revenue, as a percentage clamped to [0, 100]. It is 0 when the sum is not positive.
func CoverageIndex(totals PeriodTotals) float64 {
	sum := totals.TotalRevenue.Add(totals.TotalExpenses)
	if !sum.IsPositive() || !totals.TotalRevenue.IsPositive() {
		return 0
	}

	coverage := percentOf(totals.TotalRevenue, sum)
	if coverage > 100 {
		return 100
	}
	return coverage
}
