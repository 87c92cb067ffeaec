// Package dashboard contains dashboard-related use cases.
package dashboard

import "github.com/shopspring/decimal"

// SalesByPlatform summarizes sales and refunds of one platform.
type SalesByPlatform struct {
	Platform   string
	Quantity   int // units sold
	Revenue    decimal.Decimal
	Refunds    decimal.Decimal
	Percentage float64 // share of total revenue
}

// GroupByPlatform groups sales and their refunds by platform id.
// Platforms keep first-occurrence order: platforms seen in sales first, then
// platforms that only appear in refunds.
func GroupByPlatform(sales []SaleRecord, refunds []RefundRecord) []SalesByPlatform {
	index := make(map[string]int)
	platforms := make([]SalesByPlatform, 0)

	touch := func(id string) *SalesByPlatform {
		key := platformOf(id)
		i, ok := index[key]
		if !ok {
			i = len(platforms)
			index[key] = i
			platforms = append(platforms, SalesByPlatform{
				Platform: key,
				Revenue:  decimal.Zero,
				Refunds:  decimal.Zero,
			})
		}
		return &platforms[i]
	}

	totalRevenue := decimal.Zero
	for _, s := range sales {
		amount := amountOf(s.NetAmount)
		p := touch(s.PlatformID)
		p.Quantity += quantityOf(s.Quantity)
		p.Revenue = p.Revenue.Add(amount)
		totalRevenue = totalRevenue.Add(amount)
	}

	for _, r := range refunds {
		p := touch(r.PlatformID)
		p.Refunds = p.Refunds.Add(amountOf(r.Amount))
	}

	for i := range platforms {
		platforms[i].Percentage = percentOf(platforms[i].Revenue, totalRevenue)
	}

	return platforms
}
