// Package valueobject contains domain value objects for the Sales Tracker system.
package valueobject

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar day layout used for every date boundary.
const DateLayout = "2006-01-02"

// DefaultViewID identifies the dashboard view when the caller does not name one.
const DefaultViewID = "default"

// DateRange is an inclusive calendar day range.
type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange builds a DateRange truncated to calendar days in UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{start: truncateDay(start), end: truncateDay(end)}
}

// Start returns the first day of the range.
func (r DateRange) Start() time.Time { return r.start }

// End returns the last day of the range (inclusive).
func (r DateRange) End() time.Time { return r.end }

// StartString returns the start day as YYYY-MM-DD.
func (r DateRange) StartString() string { return r.start.Format(DateLayout) }

// EndString returns the end day as YYYY-MM-DD.
func (r DateRange) EndString() string { return r.end.Format(DateLayout) }

// IsZero reports whether either boundary is missing.
func (r DateRange) IsZero() bool {
	return r.start.IsZero() || r.end.IsZero()
}

// IsValid reports whether both boundaries are set and end is not before start.
func (r DateRange) IsValid() bool {
	return !r.IsZero() && !r.end.Before(r.start)
}

// Contains reports whether the given day falls inside the range.
func (r DateRange) Contains(day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(r.start) && !d.After(r.end)
}

// DashboardFilter is the immutable set of parameters of one dashboard fetch cycle.
type DashboardFilter struct {
	dateRange  DateRange
	productIDs []string
}

// NewDashboardFilter creates a filter, dropping blank and duplicate product ids.
// An empty product id set means no product filter.
func NewDashboardFilter(dateRange DateRange, productIDs []string) DashboardFilter {
	seen := make(map[string]struct{}, len(productIDs))
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return DashboardFilter{dateRange: dateRange, productIDs: ids}
}

// DateRange returns the filter's date range.
func (f DashboardFilter) DateRange() DateRange { return f.dateRange }

// ProductIDs returns a copy of the selected product ids.
func (f DashboardFilter) ProductIDs() []string {
	out := make([]string, len(f.productIDs))
	copy(out, f.productIDs)
	return out
}

// HasProductFilter reports whether the filter restricts sales to a product set.
func (f DashboardFilter) HasProductFilter() bool {
	return len(f.productIDs) > 0
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
