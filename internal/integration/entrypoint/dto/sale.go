// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// CreateSaleRequest represents the request body for sale creation.
type CreateSaleRequest struct {
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time,omitempty"`
	ProductID  string  `json:"product_id" binding:"required"`
	PlatformID string  `json:"platform_id" binding:"required"`
	Quantity   int     `json:"quantity"`
	NetAmount  float64 `json:"net_amount"`
	Currency   string  `json:"currency,omitempty"`
}

// UpdateSaleRequest represents the request body for sale update.
type UpdateSaleRequest struct {
	Date       *string  `json:"date,omitempty"`
	Time       *string  `json:"time,omitempty"`
	ProductID  *string  `json:"product_id,omitempty"`
	PlatformID *string  `json:"platform_id,omitempty"`
	Quantity   *int     `json:"quantity,omitempty"`
	NetAmount  *float64 `json:"net_amount,omitempty"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID            string    `json:"id"`
	Date          string    `json:"date"`
	Time          string    `json:"time,omitempty"`
	ProductID     string    `json:"product_id"`
	PlatformID    string    `json:"platform_id"`
	Quantity      int       `json:"quantity"`
	NetAmount     string    `json:"net_amount"`
	RefundsToDate string    `json:"refunds_to_date"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ToSaleResponse converts a domain Sale entity to a SaleResponse DTO.
func ToSaleResponse(sale *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:            sale.ID.String(),
		Date:          sale.Date.Format("2006-01-02"),
		Time:          sale.Time,
		ProductID:     sale.ProductID,
		PlatformID:    sale.PlatformID,
		Quantity:      sale.Quantity,
		NetAmount:     sale.NetAmount.StringFixed(2),
		RefundsToDate: sale.RefundsToDate.StringFixed(2),
		Currency:      sale.Currency,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
	}
}

// ToSaleListResponse converts a list of sales to SaleListResponse.
func ToSaleListResponse(sales []*entity.Sale) SaleListResponse {
	responses := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		responses[i] = ToSaleResponse(sale)
	}
	return SaleListResponse{
		Sales: responses,
	}
}
