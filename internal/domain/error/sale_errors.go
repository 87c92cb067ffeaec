// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale does not exist for the user.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrInvalidSaleQuantity is returned when quantity is not a positive integer.
	ErrInvalidSaleQuantity = errors.New("quantity must be greater than zero")

	// ErrNegativeSaleAmount is returned when the net amount is negative.
	ErrNegativeSaleAmount = errors.New("net amount must not be negative")

	// ErrInvalidSaleTime is returned when the time of day is not HH:MM or HH:MM:SS.
	ErrInvalidSaleTime = errors.New("invalid time format, expected HH:MM")

	// ErrMissingSaleFields is returned when product or platform is missing.
	ErrMissingSaleFields = errors.New("product and platform are required")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSaleQuantity SaleErrorCode = "SAL-010001"
	ErrCodeNegativeSaleAmount  SaleErrorCode = "SAL-010002"
	ErrCodeInvalidSaleTime     SaleErrorCode = "SAL-010003"
	ErrCodeMissingSaleFields   SaleErrorCode = "SAL-010004"
	ErrCodeInvalidSaleDate     SaleErrorCode = "SAL-010005"

	// Resource errors (02XXXX)
	ErrCodeSaleNotFound SaleErrorCode = "SAL-020001"

	// Internal errors (99XXXX)
	ErrCodeSaleInternalError SaleErrorCode = "SAL-990001"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
