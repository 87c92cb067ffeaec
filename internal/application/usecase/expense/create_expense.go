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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Date        time.Time
	Description string
	CategoryID  *uuid.UUID         // Optional
	AccountID   *uuid.UUID         // Optional
	Amount      decimal.Decimal
	Type        entity.ExpenseType // Optional, inferred from account or category
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	accountRepo  adapter.AccountRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	accountRepo adapter.AccountRepository,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		accountRepo:  accountRepo,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	description := strings.TrimSpace(input.Description)

	if input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"date is required",
			nil,
		)
	}

	if err := validateExpenseFields(description, input.Amount); err != nil {
		return nil, err
	}

	expenseType := input.Type
	if expenseType != "" && !expenseType.IsValid() {
		return nil, invalidTypeError()
	}

	var category *entity.Category
	if input.CategoryID != nil {
		found, err := findOwnedCategory(ctx, uc.categoryRepo, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
		category = found
	}

	var account *entity.Account
	if input.AccountID != nil {
		found, err := findOwnedAccount(ctx, uc.accountRepo, *input.AccountID, input.UserID)
		if err != nil {
			return nil, err
		}
		account = found
	}

	if expenseType == "" {
		expenseType = inferExpenseType(account, category)
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Date,
		description,
		input.CategoryID,
		input.AccountID,
		input.Amount,
		expenseType,
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: expense,
	}, nil
}

// inferExpenseType prefers the account group, then the category type.
func inferExpenseType(account *entity.Account, category *entity.Category) entity.ExpenseType {
	if account != nil && account.Group.IsValid() {
		return account.Group
	}
	if category != nil && category.ExpenseType.IsValid() {
		return category.ExpenseType
	}
	return entity.ExpenseTypeVariable
}

func validateExpenseFields(description string, amount decimal.Decimal) error {
	if description == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}

	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseAmount,
			"amount must not be negative",
			domainerror.ErrNegativeExpenseAmount,
		)
	}

	return nil
}

func invalidTypeError() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeInvalidExpenseType,
		"type must be 'fixed' or 'variable'",
		domainerror.ErrInvalidExpenseType,
	)
}

func findOwnedCategory(ctx context.Context, repo adapter.CategoryRepository, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := repo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, categoryNotFoundError()
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	if category.UserID != userID {
		return nil, categoryNotFoundError()
	}
	return category, nil
}

func findOwnedAccount(ctx context.Context, repo adapter.AccountRepository, accountID, userID uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByID(ctx, accountID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func categoryNotFoundError() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseCategoryNotFound,
		"category not found",
		domainerror.ErrCategoryNotFound,
	)
}
