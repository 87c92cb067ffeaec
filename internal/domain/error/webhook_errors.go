// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Webhook domain errors.
var (
	// ErrInvalidWebhookSecret is returned when the shared secret header does not match.
	ErrInvalidWebhookSecret = errors.New("invalid webhook secret")

	// ErrWebhookMissingFields is returned when a required payload field is absent.
	ErrWebhookMissingFields = errors.New("missing required fields")

	// ErrWebhookInvalidQuantity is returned when quantity is not positive.
	ErrWebhookInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrWebhookNegativeAmount is returned when an amount is negative.
	ErrWebhookNegativeAmount = errors.New("amount must not be negative")
)

// WebhookErrorCode defines error codes for webhook errors.
// Format: WHK-XXYYYY where XX is category and YYYY is specific error.
type WebhookErrorCode string

const (
	// Authentication errors (01XXXX)
	ErrCodeInvalidWebhookSecret WebhookErrorCode = "WHK-010001"

	// Payload errors (02XXXX)
	ErrCodeWebhookInvalidPayload  WebhookErrorCode = "WHK-020001"
	ErrCodeWebhookMissingFields   WebhookErrorCode = "WHK-020002"
	ErrCodeWebhookInvalidQuantity WebhookErrorCode = "WHK-020003"
	ErrCodeWebhookNegativeAmount  WebhookErrorCode = "WHK-020004"
	ErrCodeWebhookInvalidDate     WebhookErrorCode = "WHK-020005"
	ErrCodeWebhookInvalidUser     WebhookErrorCode = "WHK-020006"

	// Throttling errors (03XXXX)
	ErrCodeWebhookRateLimited WebhookErrorCode = "WHK-030001"

	// Internal errors (99XXXX)
	ErrCodeWebhookInternalError WebhookErrorCode = "WHK-990001"
)

// WebhookError represents a webhook error with code and message.
type WebhookError struct {
	Code    WebhookErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *WebhookError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *WebhookError) Unwrap() error {
	return e.Err
}

// NewWebhookError creates a new WebhookError with the given code and message.
func NewWebhookError(code WebhookErrorCode, message string, err error) *WebhookError {
	return &WebhookError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
