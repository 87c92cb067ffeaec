// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names of the exported workbook, in order.
const (
	SheetSummary   = "Resumo"
	SheetDaily     = "Diário"
	SheetPlatforms = "Plataformas"
	SheetWeekdays  = "Dias da semana"
	SheetHours     = "Horários"
	SheetExpenses  = "Despesas"
	SheetProducts  = "Top produtos"
)

// xlsxExporter implements dashboard.ReportExporter with an Excel workbook.
type xlsxExporter struct{}

// NewXLSXExporter creates a new Excel report exporter.
func NewXLSXExporter() dashboard.ReportExporter {
	return &xlsxExporter{}
}

// ContentType returns the XLSX MIME type.
func (e *xlsxExporter) ContentType() string {
	return xlsxContentType
}

// FileExtension returns ".xlsx".
func (e *xlsxExporter) FileExtension() string {
	return ".xlsx"
}

// Export writes one sheet per dashboard section.
func (e *xlsxExporter) Export(ctx context.Context, result *dashboard.DashboardResult, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E7FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name    string
		headers []interface{}
		rows    [][]interface{}
	}{
		{SheetSummary, []interface{}{"Indicador", "Valor"}, summaryRows(result)},
		{SheetDaily, []interface{}{"Data", "Receita", "Despesas", "Lucro", "Reembolsos", "Receita acumulada", "Despesas acumuladas", "Lucro acumulado"}, dailyRows(result)},
		{SheetPlatforms, []interface{}{"Plataforma", "Quantidade", "Receita", "Reembolsos", "%"}, platformRows(result.Platforms)},
		{SheetWeekdays, []interface{}{"Dia", "Vendas", "Total", "Ticket médio", "%"}, bucketRows(result.Weekdays)},
		{SheetHours, []interface{}{"Horário", "Vendas", "Total", "Ticket médio", "%"}, bucketRows(result.Hours)},
		{SheetExpenses, []interface{}{"Tipo", "Categoria", "Valor", "Lançamentos", "%"}, expenseRows(result.ExpenseDistribution)},
		{SheetProducts, []interface{}{"Produto", "Nome", "Quantidade", "Receita", "%"}, productRows(result.TopProducts)},
	}

	for _, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return err
		}

		if sheet.name != SheetSummary {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
			}
		}

		if err := writeTable(f, sheet.name, sheet.headers, sheet.rows, headerStyle); err != nil {
			return fmt.Errorf("failed to write sheet %s: %w", sheet.name, err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, sheet string, headers []interface{}, rows [][]interface{}, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 18)
}

func summaryRows(result *dashboard.DashboardResult) [][]interface{} {
	return [][]interface{}{
		{"Período", result.StartDate + " a " + result.EndDate},
		{"Receita total", money(result.Totals.TotalRevenue)},
		{"Despesas totais", money(result.Totals.TotalExpenses)},
		{"Lucro", money(result.Totals.TotalProfit)},
		{"Reembolsos", money(result.Totals.TotalRefunds)},
		{"Despesas fixas", money(result.FixedExpenses)},
		{"Despesas variáveis", money(result.VariableExpenses)},
		{"Índice de cobertura (%)", result.Coverage},
		{"Vendas", result.SaleCount},
		{"Despesas lançadas", result.ExpenseCount},
		{"Reembolsos lançados", result.RefundCount},
	}
}

func dailyRows(result *dashboard.DashboardResult) [][]interface{} {
	rows := make([][]interface{}, 0, len(result.Daily))
	for i, day := range result.Daily {
		row := []interface{}{day.Date, money(day.Revenue), money(day.Expenses), money(day.Profit), money(day.Refunds)}
		if i < len(result.Accumulated) {
			acc := result.Accumulated[i]
			row = append(row, money(acc.CumRevenue), money(acc.CumExpenses), money(acc.CumProfit))
		}
		rows = append(rows, row)
	}
	return rows
}

func platformRows(platforms []dashboard.SalesByPlatform) [][]interface{} {
	rows := make([][]interface{}, 0, len(platforms))
	for _, p := range platforms {
		rows = append(rows, []interface{}{p.Platform, p.Quantity, money(p.Revenue), money(p.Refunds), p.Percentage})
	}
	return rows
}

func bucketRows(buckets []dashboard.SalesBucket) [][]interface{} {
	rows := make([][]interface{}, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []interface{}{b.Label, b.Quantity, money(b.Total), money(b.TicketAverage), b.Percentage})
	}
	return rows
}

func expenseRows(distribution []dashboard.ExpenseDistribution) [][]interface{} {
	rows := make([][]interface{}, 0, len(distribution))
	for _, d := range distribution {
		rows = append(rows, []interface{}{string(d.Type), d.CategoryName, money(d.Amount), d.Count, d.Percentage})
	}
	return rows
}

func productRows(products []dashboard.TopProduct) [][]interface{} {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ProductID, p.ProductName, p.Quantity, money(p.Revenue), p.Percentage})
	}
	return rows
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
