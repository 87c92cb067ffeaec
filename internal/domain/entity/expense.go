// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType classifies a cost as recurring or activity-driven.
type ExpenseType string

const (
	ExpenseTypeFixed    ExpenseType = "fixed"
	ExpenseTypeVariable ExpenseType = "variable"
)

// IsValid reports whether the expense type is one of the known values.
func (t ExpenseType) IsValid() bool {
	return t == ExpenseTypeFixed || t == ExpenseTypeVariable
}

// Expense represents a business cost.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Description string
	CategoryID  *uuid.UUID // Optional, can be uncategorized
	AccountID   *uuid.UUID // Optional
	Amount      decimal.Decimal
	Type        ExpenseType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	date time.Time,
	description string,
	categoryID *uuid.UUID,
	accountID *uuid.UUID,
	amount decimal.Decimal,
	expenseType ExpenseType,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Description: description,
		CategoryID:  categoryID,
		AccountID:   accountID,
		Amount:      amount,
		Type:        expenseType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
