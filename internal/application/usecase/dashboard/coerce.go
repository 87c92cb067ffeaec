// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

// Every nullable or malformed field is defaulted here so the aggregators
// never see a missing value. A bad row degrades accuracy instead of failing.

func amountOf(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

func quantityOf(q int) int {
	if q < 0 {
		return 0
	}
	return q
}

func (s SaleRecord) dateKey() string    { return s.Date.Format(valueobject.DateLayout) }
func (e ExpenseRecord) dateKey() string { return e.Date.Format(valueobject.DateLayout) }
func (r RefundRecord) dateKey() string  { return r.Date.Format(valueobject.DateLayout) }

// expenseTypeOf maps the stored type to fixed or variable. Anything unknown is variable.
func expenseTypeOf(raw string) entity.ExpenseType {
	if entity.ExpenseType(raw) == entity.ExpenseTypeFixed {
		return entity.ExpenseTypeFixed
	}
	return entity.ExpenseTypeVariable
}

// categoryOf returns the category key and label, falling back to uncategorized.
func categoryOf(e ExpenseRecord) (id, name string) {
	if e.CategoryID == "" {
		return UncategorizedID, UncategorizedName
	}
	if e.CategoryName == "" {
		return e.CategoryID, UncategorizedName
	}
	return e.CategoryID, e.CategoryName
}

func platformOf(id string) string {
	if id == "" {
		return UnknownPlatform
	}
	return id
}

// percentOf returns part/total*100, or 0 when total is not positive.
func percentOf(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	pct, _ := part.Mul(hundred).Div(total).Float64()
	return pct
}

// ticketAverage returns total/count, or 0 when count is 0.
func ticketAverage(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(count)))
}

var hundred = decimal.NewFromInt(100)
