// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account does not exist for the user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountGroup is returned when group is neither fixed nor variable.
	ErrInvalidAccountGroup = errors.New("group must be fixed or variable")

	// ErrAccountNameRequired is returned when the name is empty.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrAccountSubgroupRequired is returned when the subgroup is empty.
	ErrAccountSubgroupRequired = errors.New("account subgroup is required")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameRequired     AccountErrorCode = "ACC-010001"
	ErrCodeInvalidAccountGroup     AccountErrorCode = "ACC-010002"
	ErrCodeAccountSubgroupRequired AccountErrorCode = "ACC-010003"

	// Resource errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"

	// Internal errors (99XXXX)
	ErrCodeAccountInternalError AccountErrorCode = "ACC-990001"
)

// AccountError represents a account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
