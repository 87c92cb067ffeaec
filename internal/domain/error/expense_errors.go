// Package error defines domain-specific errors for the Sales Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist for the user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNegativeExpenseAmount is returned when the amount is negative.
	ErrNegativeExpenseAmount = errors.New("amount must not be negative")

	// ErrInvalidExpenseType is returned when type is neither fixed nor variable.
	ErrInvalidExpenseType = errors.New("type must be fixed or variable")

	// ErrExpenseDescriptionRequired is returned when the description is empty.
	ErrExpenseDescriptionRequired = errors.New("description is required")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeExpenseAmount      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseType         ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate         ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseCategoryNotFound    ExpenseErrorCode = "EXP-010005"
	ErrCodeExpenseAccountNotFound     ExpenseErrorCode = "EXP-010006"

	// Resource errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Internal errors (99XXXX)
	ErrCodeExpenseInternalError ExpenseErrorCode = "EXP-990001"
)

// ExpenseError represents a expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
