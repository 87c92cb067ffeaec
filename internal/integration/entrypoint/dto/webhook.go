// Package dto defines data transfer objects for API requests and responses.
package dto

// SaleWebhookRequest is the body platforms post for a new sale.
type SaleWebhookRequest struct {
	UserID     string  `json:"userId"`
	Date       string  `json:"date"`
	Time       string  `json:"time,omitempty"`
	ProductID  string  `json:"productId"`
	PlatformID string  `json:"platformId"`
	Quantity   int     `json:"quantity"`
	NetAmount  float64 `json:"netAmount"`
	Currency   string  `json:"currency,omitempty"`
}

// RefundWebhookRequest is the body platforms post for a refund.
type RefundWebhookRequest struct {
	UserID       string  `json:"userId"`
	Date         string  `json:"date"`
	SaleID       string  `json:"saleId,omitempty"`
	ProductID    string  `json:"productId"`
	PlatformID   string  `json:"platformId"`
	Quantity     int     `json:"quantity"`
	RefundAmount float64 `json:"refundAmount"`
	Reason       string  `json:"reason,omitempty"`
}

// WebhookResponse acknowledges an ingested webhook.
type WebhookResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SaleID   string `json:"saleId,omitempty"`
	RefundID string `json:"refundId,omitempty"`
}
