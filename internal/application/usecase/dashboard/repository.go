// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/valueobject"
)

// RecordStore defines the filtered reads the dashboard is built from.
// Date ranges are inclusive on both ends. Any error is terminal for the fetch cycle.
type RecordStore interface {
	// FetchSales returns the sales inside the range. An empty productIDs means no product filter.
	FetchSales(ctx context.Context, userID uuid.UUID, dateRange valueobject.DateRange, productIDs []string) ([]SaleRecord, error)

	// FetchExpenses returns the expenses inside the range with their category names.
	FetchExpenses(ctx context.Context, userID uuid.UUID, dateRange valueobject.DateRange) ([]ExpenseRecord, error)

	// FetchRefunds returns the refunds inside the range.
	FetchRefunds(ctx context.Context, userID uuid.UUID, dateRange valueobject.DateRange) ([]RefundRecord, error)

	// FetchProducts returns the user's products ordered by name.
	FetchProducts(ctx context.Context, userID uuid.UUID) ([]ProductRecord, error)

	// GetSalesDateRange returns the oldest and newest sale dates of the user.
	GetSalesDateRange(ctx context.Context, userID uuid.UUID) (*SalesDateRange, error)
}

// ReportExporter renders a dashboard result into a downloadable document.
type ReportExporter interface {
	// ContentType returns the MIME type of the rendered document.
	ContentType() string

	// FileExtension returns the file extension including the leading dot.
	FileExtension() string

	// Export writes the rendered document to w.
	Export(ctx context.Context, result *DashboardResult, w io.Writer) error
}

// SaleRecord is a sale row as read from the record store.
// Amount columns are nullable at the storage boundary.
type SaleRecord struct {
	ID            string
	Date          time.Time
	Time          string // HH:MM[:SS], may be empty
	ProductID     string
	ProductName   string
	PlatformID    string
	Quantity      int
	NetAmount     decimal.NullDecimal
	RefundsToDate decimal.NullDecimal
	Currency      string
}

// ExpenseRecord is an expense row as read from the record store.
type ExpenseRecord struct {
	ID           string
	Date         time.Time
	Description  string
	CategoryID   string // empty when uncategorized
	CategoryName string
	Amount       decimal.NullDecimal
	Type         string
}

// RefundRecord is a refund row as read from the record store.
type RefundRecord struct {
	ID         string
	Date       time.Time
	SaleID     string // empty when the refund does not reference a sale
	ProductID  string
	PlatformID string
	Quantity   int
	Amount     decimal.NullDecimal
}

// ProductRecord is a product row used to populate the filter.
type ProductRecord struct {
	ID   string
	Name string
}

// SalesDateRange represents the date boundaries of a user's sales history.
type SalesDateRange struct {
	OldestDate *time.Time
	NewestDate *time.Time
	TotalSales int
}
