// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ExpenseDistribution is one category's share of its expense type subtotal.
type ExpenseDistribution struct {
	Type         entity.ExpenseType
	CategoryID   string
	CategoryName string
	Amount       decimal.Decimal
	Count        int
	Percentage   float64 // share of the type subtotal, not the grand total
}

// DistributeExpenses groups expenses by type and category.
// Fixed rows come first; within a type rows are ordered by amount descending,
// then by category name.
func DistributeExpenses(expenses []ExpenseRecord) []ExpenseDistribution {
	type groupKey struct {
		expenseType entity.ExpenseType
		categoryID  string
	}

	index := make(map[groupKey]int)
	rows := make([]ExpenseDistribution, 0)
	subtotals := map[entity.ExpenseType]decimal.Decimal{
		entity.ExpenseTypeFixed:    decimal.Zero,
		entity.ExpenseTypeVariable: decimal.Zero,
	}

	for _, e := range expenses {
		expenseType := expenseTypeOf(e.Type)
		categoryID, categoryName := categoryOf(e)
		amount := amountOf(e.Amount)

		key := groupKey{expenseType: expenseType, categoryID: categoryID}
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, ExpenseDistribution{
				Type:         expenseType,
				CategoryID:   categoryID,
				CategoryName: categoryName,
				Amount:       decimal.Zero,
			})
		}

		rows[i].Amount = rows[i].Amount.Add(amount)
		rows[i].Count++
		subtotals[expenseType] = subtotals[expenseType].Add(amount)
	}

	for i := range rows {
		rows[i].Percentage = percentOf(rows[i].Amount, subtotals[rows[i].Type])
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Type != rows[j].Type {
			return rows[i].Type == entity.ExpenseTypeFixed
		}
		if !rows[i].Amount.Equal(rows[j].Amount) {
			return rows[i].Amount.GreaterThan(rows[j].Amount)
		}
		return rows[i].CategoryName < rows[j].CategoryName
	})

	return rows
}

// ExpenseSubtotal sums the distribution rows of one expense type.
func ExpenseSubtotal(rows []ExpenseDistribution, expenseType entity.ExpenseType) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.Type == expenseType {
			total = total.Add(row.Amount)
		}
	}
	return total
}
