// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the number of entries kept by the top-N views when none is given.
const DefaultTopN = 5

// MaxTopN caps the requested top-N size.
const MaxTopN = 50

// TopProduct is a product ranked by revenue.
type TopProduct struct {
	ProductID   string
	ProductName string
	Quantity    int // units sold
	Revenue     decimal.Decimal
	Percentage  float64 // share of total revenue
}

// topN returns the first n items ordered by less. Ties keep input order and
// the input slice is never modified.
func topN[T any](items []T, n int, less func(a, b T) bool) []T {
	if n <= 0 {
		n = DefaultTopN
	}

	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopProducts groups sales by product and returns the n products with the
// highest revenue.
func TopProducts(sales []SaleRecord, n int) []TopProduct {
	index := make(map[string]int)
	products := make([]TopProduct, 0)
	totalRevenue := decimal.Zero

	for _, s := range sales {
		i, ok := index[s.ProductID]
		if !ok {
			i = len(products)
			index[s.ProductID] = i
			name := s.ProductName
			if name == "" {
				name = s.ProductID
			}
			products = append(products, TopProduct{
				ProductID:   s.ProductID,
				ProductName: name,
				Revenue:     decimal.Zero,
			})
		}

		amount := amountOf(s.NetAmount)
		products[i].Quantity += quantityOf(s.Quantity)
		products[i].Revenue = products[i].Revenue.Add(amount)
		totalRevenue = totalRevenue.Add(amount)
	}

	for i := range products {
		products[i].Percentage = percentOf(products[i].Revenue, totalRevenue)
	}

	return topN(products, n, func(a, b TopProduct) bool {
		return a.Revenue.GreaterThan(b.Revenue)
	})
}

// TopPlatforms returns the n platforms with the highest revenue.
func TopPlatforms(platforms []SalesByPlatform, n int) []SalesByPlatform {
	return topN(platforms, n, func(a, b SalesByPlatform) bool {
		return a.Revenue.GreaterThan(b.Revenue)
	})
}

// BusiestWeekdays returns the n weekday buckets with the most sales.
func BusiestWeekdays(buckets []SalesBucket, n int) []SalesBucket {
	return topN(buckets, n, busier)
}

// BusiestHours returns the n hour buckets with the most sales.
func BusiestHours(buckets []SalesBucket, n int) []SalesBucket {
	return topN(buckets, n, busier)
}

// TopExpenseCategories returns the n expense categories with the highest
// amount across both expense types.
func TopExpenseCategories(rows []ExpenseDistribution, n int) []ExpenseDistribution {
	return topN(rows, n, func(a, b ExpenseDistribution) bool {
		return a.Amount.GreaterThan(b.Amount)
	})
}

func busier(a, b SalesBucket) bool {
	if a.Quantity != b.Quantity {
		return a.Quantity > b.Quantity
	}
	return a.Total.GreaterThan(b.Total)
}
