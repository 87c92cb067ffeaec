// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_sales_user_date"`
	Date          time.Time       `gorm:"type:date;not null;index:idx_sales_user_date"`
	Time          string          `gorm:"type:varchar(8)"`
	ProductID     string          `gorm:"type:varchar(100);not null;index"`
	PlatformID    string          `gorm:"type:varchar(100);not null"`
	Quantity      int             `gorm:"type:integer;not null"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	RefundsToDate decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'BRL'"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	return &entity.Sale{
		ID:            m.ID,
		UserID:        m.UserID,
		Date:          m.Date,
		Time:          m.Time,
		ProductID:     m.ProductID,
		PlatformID:    m.PlatformID,
		Quantity:      m.Quantity,
		NetAmount:     m.NetAmount,
		RefundsToDate: m.RefundsToDate,
		Currency:      m.Currency,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	return &SaleModel{
		ID:            sale.ID,
		UserID:        sale.UserID,
		Date:          sale.Date,
		Time:          sale.Time,
		ProductID:     sale.ProductID,
		PlatformID:    sale.PlatformID,
		Quantity:      sale.Quantity,
		NetAmount:     sale.NetAmount,
		RefundsToDate: sale.RefundsToDate,
		Currency:      sale.Currency,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}
