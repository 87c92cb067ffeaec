// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sales-tracker/backend/internal/application/usecase/dashboard"
	"github.com/sales-tracker/backend/internal/domain/valueobject"
	"github.com/sales-tracker/backend/internal/integration/persistence/model"
)

// recordStore implements the dashboard.RecordStore interface.
type recordStore struct {
	db *gorm.DB
}

// NewRecordStore creates a new dashboard record store instance.
func NewRecordStore(db *gorm.DB) dashboard.RecordStore {
	return &recordStore{
		db: db,
	}
}

type saleRow struct {
	ID            uuid.UUID           `gorm:"column:id"`
	Date          time.Time           `gorm:"column:date"`
	Time          *string             `gorm:"column:time"`
	ProductID     string              `gorm:"column:product_id"`
	ProductName   *string             `gorm:"column:product_name"`
	PlatformID    string              `gorm:"column:platform_id"`
	Quantity      *int                `gorm:"column:quantity"`
	NetAmount     decimal.NullDecimal `gorm:"column:net_amount"`
	RefundsToDate decimal.NullDecimal `gorm:"column:refunds_to_date"`
	Currency      *string             `gorm:"column:currency"`
}

type expenseRow struct {
	ID           uuid.UUID           `gorm:"column:id"`
	Date         time.Time           `gorm:"column:date"`
	Description  string              `gorm:"column:description"`
	CategoryID   *uuid.UUID          `gorm:"column:category_id"`
	CategoryName *string             `gorm:"column:category_name"`
	Amount       decimal.NullDecimal `gorm:"column:amount"`
	Type         *string             `gorm:"column:type"`
}

type refundRow struct {
	ID         uuid.UUID           `gorm:"column:id"`
	Date       time.Time           `gorm:"column:date"`
	SaleID     *uuid.UUID          `gorm:"column:sale_id"`
	ProductID  string              `gorm:"column:product_id"`
	PlatformID string              `gorm:"column:platform_id"`
	Quantity   *int                `gorm:"column:quantity"`
	Amount     decimal.NullDecimal `gorm:"column:amount"`
}

// FetchSales returns the sales inside the range joined with their product names.
func (r *recordStore) FetchSales(
	ctx context.Context,
	userID uuid.UUID,
	dateRange valueobject.DateRange,
	productIDs []string,
) ([]dashboard.SaleRecord, error) {
	query := r.db.WithContext(ctx).
		Table("sales").
		Select(`sales.id, sales.date, sales.time, sales.product_id, products.name AS product_name,
			sales.platform_id, sales.quantity, sales.net_amount, sales.refunds_to_date, sales.currency`).
		Joins("LEFT JOIN products ON products.id = sales.product_id AND products.user_id = sales.user_id").
		Where("sales.user_id = ?", userID).
		Where("sales.date >= ? AND sales.date <= ?", dateRange.Start(), dateRange.End())

	if len(productIDs) > 0 {
		query = query.Where("sales.product_id IN ?", productIDs)
	}

	var rows []saleRow
	if err := query.Order("sales.date ASC").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	records := make([]dashboard.SaleRecord, len(rows))
	for i, row := range rows {
		records[i] = dashboard.SaleRecord{
			ID:            row.ID.String(),
			Date:          row.Date,
			Time:          deref(row.Time),
			ProductID:     row.ProductID,
			ProductName:   deref(row.ProductName),
			PlatformID:    row.PlatformID,
			Quantity:      derefInt(row.Quantity),
			NetAmount:     row.NetAmount,
			RefundsToDate: row.RefundsToDate,
			Currency:      deref(row.Currency),
		}
	}
	return records, nil
}

// FetchExpenses returns the expenses inside the range joined with their category names.
func (r *recordStore) FetchExpenses(
	ctx context.Context,
	userID uuid.UUID,
	dateRange valueobject.DateRange,
) ([]dashboard.ExpenseRecord, error) {
	var rows []expenseRow
	err := r.db.WithContext(ctx).
		Table("expenses").
		Select("expenses.id, expenses.date, expenses.description, expenses.category_id, categories.name AS category_name, expenses.amount, expenses.type").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ?", userID).
		Where("expenses.date >= ? AND expenses.date <= ?", dateRange.Start(), dateRange.End()).
		Order("expenses.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	records := make([]dashboard.ExpenseRecord, len(rows))
	for i, row := range rows {
		record := dashboard.ExpenseRecord{
			ID:           row.ID.String(),
			Date:         row.Date,
			Description:  row.Description,
			CategoryName: deref(row.CategoryName),
			Amount:       row.Amount,
			Type:         deref(row.Type),
		}
		if row.CategoryID != nil {
			record.CategoryID = row.CategoryID.String()
		}
		records[i] = record
	}
	return records, nil
}

// FetchRefunds returns the refunds inside the range.
func (r *recordStore) FetchRefunds(
	ctx context.Context,
	userID uuid.UUID,
	dateRange valueobject.DateRange,
) ([]dashboard.RefundRecord, error) {
	var rows []refundRow
	err := r.db.WithContext(ctx).
		Table("refunds").
		Select("id, date, sale_id, product_id, platform_id, quantity, amount").
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", dateRange.Start(), dateRange.End()).
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch refunds: %w", err)
	}

	records := make([]dashboard.RefundRecord, len(rows))
	for i, row := range rows {
		record := dashboard.RefundRecord{
			ID:         row.ID.String(),
			Date:       row.Date,
			ProductID:  row.ProductID,
			PlatformID: row.PlatformID,
			Quantity:   derefInt(row.Quantity),
			Amount:     row.Amount,
		}
		if row.SaleID != nil {
			record.SaleID = row.SaleID.String()
		}
		records[i] = record
	}
	return records, nil
}

// FetchProducts returns the user's products ordered by name.
func (r *recordStore) FetchProducts(ctx context.Context, userID uuid.UUID) ([]dashboard.ProductRecord, error) {
	var productModels []model.ProductModel
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&productModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	records := make([]dashboard.ProductRecord, len(productModels))
	for i, pm := range productModels {
		records[i] = dashboard.ProductRecord{ID: pm.ID, Name: pm.Name}
	}
	return records, nil
}

// GetSalesDateRange returns the oldest and newest sale dates of the user.
func (r *recordStore) GetSalesDateRange(ctx context.Context, userID uuid.UUID) (*dashboard.SalesDateRange, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}

	if total == 0 {
		return &dashboard.SalesDateRange{}, nil
	}

	oldest, err := r.boundarySaleDate(ctx, userID, "date ASC")
	if err != nil {
		return nil, err
	}
	newest, err := r.boundarySaleDate(ctx, userID, "date DESC")
	if err != nil {
		return nil, err
	}

	return &dashboard.SalesDateRange{
		OldestDate: oldest,
		NewestDate: newest,
		TotalSales: int(total),
	}, nil
}

func (r *recordStore) boundarySaleDate(ctx context.Context, userID uuid.UUID, order string) (*time.Time, error) {
	var saleModel model.SaleModel
	err := r.db.WithContext(ctx).
		Select("date").
		Where("user_id = ?", userID).
		Order(order).
		Take(&saleModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get date range: %w", err)
	}
	return &saleModel.Date, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
