// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Product domain errors.
var (
	// ErrProductNotFound is returned when a product does not exist for the user.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductAlreadyExists is returned when the external product id is taken.
	ErrProductAlreadyExists = errors.New("product already exists")

	// ErrNegativeProductPrice is returned when the price is negative.
	ErrNegativeProductPrice = errors.New("price must not be negative")
)

// ProductErrorCode defines error codes for product errors.
// Format: PRD-XXYYYY where XX is category and YYYY is specific error.
type ProductErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingProductFields ProductErrorCode = "PRD-010001"
	ErrCodeNegativeProductPrice ProductErrorCode = "PRD-010002"
	ErrCodeProductAlreadyExists ProductErrorCode = "PRD-010003"

	// Internal errors (99XXXX)
	ErrCodeProductInternalError ProductErrorCode = "PRD-990001"
)

// ProductError represents a product error with code and message.
type ProductError struct {
	Code    ProductErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProductError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProductError) Unwrap() error {
	return e.Err
}

// NewProductError creates a new ProductError with the given code and message.
func NewProductError(code ProductErrorCode, message string, err error) *ProductError {
	return &ProductError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
