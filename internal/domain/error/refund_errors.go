// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Refund domain errors.
var (
	// ErrInvalidRefundQuantity is returned when quantity is not a positive integer.
	ErrInvalidRefundQuantity = errors.New("quantity must be greater than zero")

	// ErrNegativeRefundAmount is returned when the refunded amount is negative.
	ErrNegativeRefundAmount = errors.New("refund amount must not be negative")

	// ErrMissingRefundFields is returned when product or platform is missing.
	ErrMissingRefundFields = errors.New("product and platform are required")
)

// RefundErrorCode defines error codes for refund errors.
// Format: RFD-XXYYYY where XX is category and YYYY is specific error.
type RefundErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRefundQuantity RefundErrorCode = "RFD-010001"
	ErrCodeNegativeRefundAmount  RefundErrorCode = "RFD-010002"
	ErrCodeMissingRefundFields   RefundErrorCode = "RFD-010003"
	ErrCodeInvalidRefundDate     RefundErrorCode = "RFD-010004"

	// Internal errors (99XXXX)
	ErrCodeRefundInternalError RefundErrorCode = "RFD-990001"
)

// RefundError represents a refund error with code and message.
type RefundError struct {
	Code    RefundErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RefundError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RefundError) Unwrap() error {
	return e.Err
}

// NewRefundError creates a new RefundError with the given code and message.
func NewRefundError(code RefundErrorCode, message string, err error) *RefundError {
	return &RefundError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
