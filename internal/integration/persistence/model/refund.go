// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// RefundModel represents the refunds table in the database.
type RefundModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_refunds_user_date"`
	Date       time.Time       `gorm:"type:date;not null;index:idx_refunds_user_date"`
	SaleID     *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID  string          `gorm:"type:varchar(100);not null"`
	PlatformID string          `gorm:"type:varchar(100);not null"`
	Quantity   int             `gorm:"type:integer;not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Reason     string          `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Sale *SaleModel `gorm:"foreignKey:SaleID;references:ID"`
}

// TableName returns the table name for the RefundModel.
func (RefundModel) TableName() string {
	return "refunds"
}

// ToEntity converts a RefundModel to a domain Refund entity.
func (m *RefundModel) ToEntity() *entity.Refund {
	return &entity.Refund{
		ID:         m.ID,
		UserID:     m.UserID,
		Date:       m.Date,
		SaleID:     m.SaleID,
		ProductID:  m.ProductID,
		PlatformID: m.PlatformID,
		Quantity:   m.Quantity,
		Amount:     m.Amount,
		Reason:     m.Reason,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// RefundFromEntity creates a RefundModel from a domain Refund entity.
func RefundFromEntity(refund *entity.Refund) *RefundModel {
	return &RefundModel{
		ID:         refund.ID,
		UserID:     refund.UserID,
		Date:       refund.Date,
		SaleID:     refund.SaleID,
		ProductID:  refund.ProductID,
		PlatformID: refund.PlatformID,
		Quantity:   refund.Quantity,
		Amount:     refund.Amount,
		Reason:     refund.Reason,
		CreatedAt:  refund.CreatedAt,
		UpdatedAt:  refund.UpdatedAt,
	}
}
