// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the response for the dashboard API.
type DashboardResponse struct {
	Generation int64         `json:"generation"`
	Data       DashboardData `json:"data"`
}

// DashboardData represents the aggregated dashboard payload.
type DashboardData struct {
	Period               DashboardPeriodResponse       `json:"period"`
	Daily                []DailySummaryResponse        `json:"daily"`
	Accumulated          []AccumulatedSummaryResponse  `json:"accumulated"`
	Totals               PeriodTotalsResponse          `json:"totals"`
	CoverageIndex        float64                       `json:"coverage_index"`
	MonthlyBalance       []MonthlyBalanceResponse      `json:"monthly_balance"`
	SalesByPlatform      []PlatformResponse            `json:"sales_by_platform"`
	SalesByWeekday       []SalesBucketResponse         `json:"sales_by_weekday"`
	SalesByHour          []SalesBucketResponse         `json:"sales_by_hour"`
	ExpenseDistribution  []ExpenseDistributionResponse `json:"expense_distribution"`
	FixedExpenses        float64                       `json:"fixed_expenses"`
	VariableExpenses     float64                       `json:"variable_expenses"`
	TopProducts          []TopProductResponse          `json:"top_products"`
	TopPlatforms         []PlatformResponse            `json:"top_platforms"`
	BusiestWeekdays      []SalesBucketResponse         `json:"busiest_weekdays"`
	BusiestHours         []SalesBucketResponse         `json:"busiest_hours"`
	TopExpenseCategories []ExpenseDistributionResponse `json:"top_expense_categories"`
	Products             []ProductOptionResponse       `json:"products"`
	Counts               DashboardCountsResponse       `json:"counts"`
}

// DashboardPeriodResponse echoes the filter the dashboard was built for.
type DashboardPeriodResponse struct {
	StartDate  string   `json:"start_date"`
	EndDate    string   `json:"end_date"`
	ProductIDs []string `json:"product_ids"`
}

// DailySummaryResponse represents one day of the daily series.
type DailySummaryResponse struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	Refunds  float64 `json:"refunds"`
}

// AccumulatedSummaryResponse represents one day of the running totals.
type AccumulatedSummaryResponse struct {
	Date        string  `json:"date"`
	CumRevenue  float64 `json:"cum_revenue"`
	CumExpenses float64 `json:"cum_expenses"`
	CumProfit   float64 `json:"cum_profit"`
}

// PeriodTotalsResponse represents the period totals.
type PeriodTotalsResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalProfit   float64 `json:"total_profit"`
	TotalRefunds  float64 `json:"total_refunds"`
}

// MonthlyBalanceResponse represents revenue versus expenses for one month.
type MonthlyBalanceResponse struct {
	Month    string  `json:"month"`
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// PlatformResponse represents one platform's sales.
type PlatformResponse struct {
	Platform   string  `json:"platform"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
	Refunds    float64 `json:"refunds"`
	Percentage float64 `json:"percentage"`
}

// SalesBucketResponse represents a weekday or hour bucket.
type SalesBucketResponse struct {
	Index         int     `json:"index"`
	Label         string  `json:"label"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	TicketAverage float64 `json:"ticket_average"`
	Percentage    float64 `json:"percentage"`
}

// ExpenseDistributionResponse represents one category's share of its expense type.
type ExpenseDistributionResponse struct {
	Type         string  `json:"type"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Amount       float64 `json:"amount"`
	Count        int     `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// TopProductResponse represents one ranked product.
type TopProductResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Revenue     float64 `json:"revenue"`
	Percentage  float64 `json:"percentage"`
}

// ProductOptionResponse represents a product in the filter selector.
type ProductOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DashboardCountsResponse represents how many rows fed the dashboard.
type DashboardCountsResponse struct {
	Sales    int `json:"sales"`
	Expenses int `json:"expenses"`
	Refunds  int `json:"refunds"`
}

// DashboardStateResponse represents the viewer's latest dashboard snapshot.
type DashboardStateResponse struct {
	Status     string         `json:"status"`
	Loading    bool           `json:"loading"`
	Error      string         `json:"error,omitempty"`
	Generation int64          `json:"generation"`
	Data       *DashboardData `json:"data"`
}

// DataRangeResponse represents the response for data range API.
type DataRangeResponse struct {
	OldestDate *string `json:"oldest_date"`
	NewestDate *string `json:"newest_date"`
	TotalSales int     `json:"total_sales"`
	HasData    bool    `json:"has_data"`
}

// ToDashboardResponse converts a GetDashboardOutput to DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	return DashboardResponse{
		Generation: output.Generation,
		Data:       ToDashboardData(output.Result),
	}
}

// ToDashboardStateResponse converts a GetDashboardStateOutput to DashboardStateResponse DTO.
func ToDashboardStateResponse(output *dashboard.GetDashboardStateOutput) DashboardStateResponse {
	response := DashboardStateResponse{
		Status:     string(output.Status),
		Loading:    output.Loading,
		Error:      output.Error,
		Generation: output.Generation,
	}
	if output.Result != nil {
		data := ToDashboardData(output.Result)
		response.Data = &data
	}
	return response
}

// ToDashboardData converts a DashboardResult to the JSON payload.
func ToDashboardData(result *dashboard.DashboardResult) DashboardData {
	productIDs := result.ProductIDs
	if productIDs == nil {
		productIDs = []string{}
	}

	daily := make([]DailySummaryResponse, len(result.Daily))
	for i, d := range result.Daily {
		daily[i] = DailySummaryResponse{
			Date:     d.Date,
			Revenue:  toFloat(d.Revenue),
			Expenses: toFloat(d.Expenses),
			Profit:   toFloat(d.Profit),
			Refunds:  toFloat(d.Refunds),
		}
	}

	accumulated := make([]AccumulatedSummaryResponse, len(result.Accumulated))
	for i, a := range result.Accumulated {
		accumulated[i] = AccumulatedSummaryResponse{
			Date:        a.Date,
			CumRevenue:  toFloat(a.CumRevenue),
			CumExpenses: toFloat(a.CumExpenses),
			CumProfit:   toFloat(a.CumProfit),
		}
	}

	monthly := make([]MonthlyBalanceResponse, len(result.Monthly))
	for i, m := range result.Monthly {
		monthly[i] = MonthlyBalanceResponse{
			Month:    m.Month,
			Label:    m.Label,
			Revenue:  toFloat(m.Revenue),
			Expenses: toFloat(m.Expenses),
			Balance:  toFloat(m.Balance),
		}
	}

	products := make([]ProductOptionResponse, len(result.Products))
	for i, p := range result.Products {
		products[i] = ProductOptionResponse{ID: p.ID, Name: p.Name}
	}

	return DashboardData{
		Period: DashboardPeriodResponse{
			StartDate:  result.StartDate,
			EndDate:    result.EndDate,
			ProductIDs: productIDs,
		},
		Daily:       daily,
		Accumulated: accumulated,
		Totals: PeriodTotalsResponse{
			TotalRevenue:  toFloat(result.Totals.TotalRevenue),
			TotalExpenses: toFloat(result.Totals.TotalExpenses),
			TotalProfit:   toFloat(result.Totals.TotalProfit),
			TotalRefunds:  toFloat(result.Totals.TotalRefunds),
		},
		CoverageIndex:        result.Coverage,
		MonthlyBalance:       monthly,
		SalesByPlatform:      toPlatformResponses(result.Platforms),
		SalesByWeekday:       toBucketResponses(result.Weekdays),
		SalesByHour:          toBucketResponses(result.Hours),
		ExpenseDistribution:  toDistributionResponses(result.ExpenseDistribution),
		FixedExpenses:        toFloat(result.FixedExpenses),
		VariableExpenses:     toFloat(result.VariableExpenses),
		TopProducts:          toTopProductResponses(result.TopProducts),
		TopPlatforms:         toPlatformResponses(result.TopPlatforms),
		BusiestWeekdays:      toBucketResponses(result.BusiestWeekdays),
		BusiestHours:         toBucketResponses(result.BusiestHours),
		TopExpenseCategories: toDistributionResponses(result.TopExpenseCategories),
		Products:             products,
		Counts: DashboardCountsResponse{
			Sales:    result.SaleCount,
			Expenses: result.ExpenseCount,
			Refunds:  result.RefundCount,
		},
	}
}

// ToDataRangeResponse converts a GetDataRangeOutput to DataRangeResponse DTO.
func ToDataRangeResponse(output *dashboard.GetDataRangeOutput) DataRangeResponse {
	response := DataRangeResponse{
		TotalSales: output.TotalSales,
		HasData:    output.HasData,
	}

	if output.OldestDate != nil {
		oldest := output.OldestDate.Format("2006-01-02")
		response.OldestDate = &oldest
	}
	if output.NewestDate != nil {
		newest := output.NewestDate.Format("2006-01-02")
		response.NewestDate = &newest
	}

	return response
}

func toPlatformResponses(platforms []dashboard.SalesByPlatform) []PlatformResponse {
	responses := make([]PlatformResponse, len(platforms))
	for i, p := range platforms {
		responses[i] = PlatformResponse{
			Platform:   p.Platform,
			Quantity:   p.Quantity,
			Revenue:    toFloat(p.Revenue),
			Refunds:    toFloat(p.Refunds),
			Percentage: p.Percentage,
		}
	}
	return responses
}

func toBucketResponses(buckets []dashboard.SalesBucket) []SalesBucketResponse {
	responses := make([]SalesBucketResponse, len(buckets))
	for i, b := range buckets {
		responses[i] = SalesBucketResponse{
			Index:         b.Index,
			Label:         b.Label,
			Quantity:      b.Quantity,
			Total:         toFloat(b.Total),
			TicketAverage: toFloat(b.TicketAverage),
			Percentage:    b.Percentage,
		}
	}
	return responses
}

func toDistributionResponses(rows []dashboard.ExpenseDistribution) []ExpenseDistributionResponse {
	responses := make([]ExpenseDistributionResponse, len(rows))
	for i, r := range rows {
		responses[i] = ExpenseDistributionResponse{
			Type:         string(r.Type),
			CategoryID:   r.CategoryID,
			CategoryName: r.CategoryName,
			Amount:       toFloat(r.Amount),
			Count:        r.Count,
			Percentage:   r.Percentage,
		}
	}
	return responses
}

func toTopProductResponses(products []dashboard.TopProduct) []TopProductResponse {
	responses := make([]TopProductResponse, len(products))
	for i, p := range products {
		responses[i] = TopProductResponse{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Quantity:    p.Quantity,
			Revenue:     toFloat(p.Revenue),
			Percentage:  p.Percentage,
		}
	}
	return responses
}
