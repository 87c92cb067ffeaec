// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

// MonthlyBalance is revenue against expenses for one calendar month.
type MonthlyBalance struct {
	Month    string // YYYY-MM
	Label    string // e.g. "Mar 2025"
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// BalanceByMonth rolls the daily summaries up to calendar months, ascending.
func BalanceByMonth(daily []DailySummary) []MonthlyBalance {
	byMonth := make(map[string]*MonthlyBalance)

	for _, day := range daily {
		date, err := time.Parse(valueobject.DateLayout, day.Date)
		if err != nil {
			continue
		}

		key := date.Format("2006-01")
		month, ok := byMonth[key]
		if !ok {
			month = &MonthlyBalance{
				Month:    key,
				Label:    MonthLabel(date),
				Revenue:  decimal.Zero,
				Expenses: decimal.Zero,
				Balance:  decimal.Zero,
			}
			byMonth[key] = month
		}

		month.Revenue = month.Revenue.Add(day.Revenue)
		month.Expenses = month.Expenses.Add(day.Expenses)
		month.Balance = month.Revenue.Sub(month.Expenses)
	}

	months := make([]MonthlyBalance, 0, len(byMonth))
	for _, month := range byMonth {
		months = append(months, *month)
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i].Month < months[j].Month
	})

	return months
}
