// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	Date          *time.Time
	Description   *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	AccountID     *uuid.UUID
	ClearAccount  bool
	Amount        *decimal.Decimal
	Type          *entity.ExpenseType
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	accountRepo  adapter.AccountRepository
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.Description != nil {
		expense.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, invalidTypeError()
		}
		expense.Type = *input.Type
	}

	if err := validateExpenseFields(expense.Description, expense.Amount); err != nil {
		return nil, err
	}

	switch {
	case input.ClearCategory:
		expense.CategoryID = nil
	case input.CategoryID != nil:
		if _, err := findOwnedCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID); err != nil {
			return nil, err
		}
		expense.CategoryID = input.CategoryID
	}

	switch {
	case input.ClearAccount:
		expense.AccountID = nil
	case input.AccountID != nil:
		if _, err := findOwnedAccount(ctx, uc.accountRepo, *input.AccountID, input.UserID); err != nil {
			return nil, err
		}
		expense.AccountID = input.AccountID
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: expense,
	}, nil
}
