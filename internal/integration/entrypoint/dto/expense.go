// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sales-tracker/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required"`
	CategoryID  *string `json:"category_id,omitempty"`
	AccountID   *string `json:"account_id,omitempty"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type,omitempty" binding:"omitempty,oneof=fixed variable"`
}

// UpdateExpenseRequest represents the request body for expense update.
// An empty category_id or account_id detaches the expense.
type UpdateExpenseRequest struct {
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	CategoryID  *string  `json:"category_id,omitempty"`
	AccountID   *string  `json:"account_id,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty" binding:"omitempty,oneof=fixed variable"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CategoryID  *string   `json:"category_id"`
	AccountID   *string   `json:"account_id"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:          expense.ID.String(),
		Date:        expense.Date.Format("2006-01-02"),
		Description: expense.Description,
		Amount:      expense.Amount.StringFixed(2),
		Type:        string(expense.Type),
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}

	if expense.CategoryID != nil {
		id := expense.CategoryID.String()
		response.CategoryID = &id
	}
	if expense.AccountID != nil {
		id := expense.AccountID.String()
		response.AccountID = &id
	}

	return response
}

// ToExpenseListResponse converts a list of expenses to ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		responses[i] = ToExpenseResponse(expense)
	}
	return ExpenseListResponse{
		Expenses: responses,
	}
}
