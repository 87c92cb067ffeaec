// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// CreateRefundRequest represents the request body for manual refund registration.
type CreateRefundRequest struct {
	Date       string  `json:"date" binding:"required"`
	SaleID     *string `json:"sale_id,omitempty"`
	ProductID  string  `json:"product_id" binding:"required"`
	PlatformID string  `json:"platform_id" binding:"required"`
	Quantity   int     `json:"quantity"`
	Amount     float64 `json:"amount"`
	Reason     string  `json:"reason,omitempty"`
}

// RefundResponse represents a single refund in API responses.
type RefundResponse struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	SaleID     *string   `json:"sale_id"`
	ProductID  string    `json:"product_id"`
	PlatformID string    `json:"platform_id"`
	Quantity   int       `json:"quantity"`
	Amount     string    `json:"amount"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// RefundListResponse represents the response for listing refunds.
type RefundListResponse struct {
	Refunds []RefundResponse `json:"refunds"`
}

// ToRefundResponse converts a domain Refund entity to a RefundResponse DTO.
func ToRefundResponse(refund *entity.Refund) RefundResponse {
	response := RefundResponse{
		ID:         refund.ID.String(),
		Date:       refund.Date.Format("2006-01-02"),
		ProductID:  refund.ProductID,
		PlatformID: refund.PlatformID,
		Quantity:   refund.Quantity,
		Amount:     refund.Amount.StringFixed(2),
		Reason:     refund.Reason,
		CreatedAt:  refund.CreatedAt,
	}
	if refund.SaleID != nil {
		id := refund.SaleID.String()
		response.SaleID = &id
	}
	return response
}

// ToRefundListResponse converts a list of refunds to RefundListResponse.
func ToRefundListResponse(refunds []*entity.Refund) RefundListResponse {
	responses := make([]RefundResponse, len(refunds))
	for i, refund := range refunds {
		responses[i] = ToRefundResponse(refund)
	}
	return RefundListResponse{
		Refunds: responses,
	}
}
