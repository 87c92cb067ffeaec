// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SalesBucket summarizes the sales falling into one fixed bucket
// (a weekday or an hour range). Quantity counts sale line items, not units.
type SalesBucket struct {
	Index         int
	Label         string
	Quantity      int
	Total         decimal.Decimal
	TicketAverage decimal.Decimal
	Percentage    float64 // share of line items across all buckets
}

// GroupByWeekday buckets sales by the weekday of their date.
// Always returns 7 buckets, Sunday first, zero-filled.
func GroupByWeekday(sales []SaleRecord) []SalesBucket {
	buckets := newBuckets(weekdayLabels[:])
	for _, s := range sales {
		addToBucket(&buckets[int(s.Date.Weekday())], s)
	}
	return finishBuckets(buckets)
}

// GroupByHour buckets sales into the four 6-hour windows of their time of day.
// Always returns 4 buckets, zero-filled. Sales with a missing or unparseable
// time of day are left out.
func GroupByHour(sales []SaleRecord) []SalesBucket {
	buckets := newBuckets(hourBucketLabels[:])
	for _, s := range sales {
		hour, ok := parseHour(s.Time)
		if !ok {
			continue
		}
		addToBucket(&buckets[hour/6], s)
	}
	return finishBuckets(buckets)
}

func newBuckets(labels []string) []SalesBucket {
	buckets := make([]SalesBucket, len(labels))
	for i, label := range labels {
		buckets[i] = SalesBucket{
			Index:         i,
			Label:         label,
			Total:         decimal.Zero,
			TicketAverage: decimal.Zero,
		}
	}
	return buckets
}

func addToBucket(b *SalesBucket, s SaleRecord) {
	b.Quantity++
	b.Total = b.Total.Add(amountOf(s.NetAmount))
}

func finishBuckets(buckets []SalesBucket) []SalesBucket {
	count := 0
	for _, b := range buckets {
		count += b.Quantity
	}
	total := decimal.NewFromInt(int64(count))

	for i := range buckets {
		buckets[i].TicketAverage = ticketAverage(buckets[i].Total, buckets[i].Quantity)
		buckets[i].Percentage = percentOf(decimal.NewFromInt(int64(buckets[i].Quantity)), total)
	}
	return buckets
}

// parseHour extracts the hour from HH:MM or HH:MM:SS.
func parseHour(timeOfDay string) (int, bool) {
	parts := strings.Split(strings.TrimSpace(timeOfDay), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}

	return hour, true
}
