// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"fmt"
	"time"
)

// UncategorizedID is a constant string used to represent uncategorized expenses.
const UncategorizedID = "uncategorized"

// UncategorizedName is the default name for uncategorized expenses (Portuguese).
const UncategorizedName = "Sem categoria"

// UnknownPlatform groups sales that arrived without a platform id.
const UnknownPlatform = "unknown"

// monthAbbreviations maps months to Portuguese abbreviations.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Fev",
	time.March:     "Mar",
	time.April:     "Abr",
	time.May:       "Mai",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Ago",
	time.September: "Set",
	time.October:   "Out",
	time.November:  "Nov",
	time.December:  "Dez",
}

// weekdayLabels are indexed by time.Weekday, Sunday first.
var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// hourBucketLabels are the four fixed 6-hour windows.
var hourBucketLabels = [4]string{
	"00:00 - 05:59",
	"06:00 - 11:59",
	"12:00 - 17:59",
	"18:00 - 23:59",
}

// MonthLabel formats a month as "{month_abbr} {year}" (e.g., "Mar 2025").
func MonthLabel(date time.Time) string {
	return fmt.Sprintf("%s %d", monthAbbreviations[date.Month()], date.Year())
}
