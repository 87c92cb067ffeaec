package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

type fakeExpenseRepository struct {
	expenses map[uuid.UUID]*entity.Expense
	lastList adapter.ExpenseFilter
}

func newFakeExpenseRepository() *fakeExpenseRepository {
	return &fakeExpenseRepository{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (r *fakeExpenseRepository) List(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	r.lastList = filter
	var expenses []*entity.Expense
	for _, expense := range r.expenses {
		if expense.UserID == filter.UserID {
			expenses = append(expenses, expense)
		}
	}
	return expenses, nil
}

func (r *fakeExpenseRepository) Update(_ context.Context, expense *entity.Expense) error {
	r.expenses[expense.ID] = expense
	return nil
}

func (r *fakeExpenseRepository) Delete(_ context.Context, id, userID uuid.UUID) error {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return domainerror.ErrExpenseNotFound
	}
	delete(r.expenses, id)
	return nil
}

type fakeCategoryRepository struct {
	adapter.CategoryRepository
	categories map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

type fakeAccountRepository struct {
	adapter.AccountRepository
	accounts map[uuid.UUID]*entity.Account
}

func (r *fakeAccountRepository) FindByID(_ context.Context, id, userID uuid.UUID) (*entity.Account, error) {
	account, ok := r.accounts[id]
	if !ok || account.UserID != userID {
		return nil, domainerror.ErrAccountNotFound
	}
	return account, nil
}

type fixture struct {
	userID     uuid.UUID
	expenses   *fakeExpenseRepository
	categories *fakeCategoryRepository
	accounts   *fakeAccountRepository
	fixedCat   *entity.Category
	foreignCat *entity.Category
	fixedAcc   *entity.Account
}

func newFixture() *fixture {
	userID := uuid.New()
	fixedCat := entity.NewCategory(userID, "Ferramentas", "", "", nil, entity.ExpenseTypeFixed)
	foreignCat := entity.NewCategory(uuid.New(), "Outro", "", "", nil, entity.ExpenseTypeFixed)
	fixedAcc := entity.NewAccount(userID, "Servidor", entity.ExpenseTypeFixed, "Infra")

	return &fixture{
		userID:   userID,
		expenses: newFakeExpenseRepository(),
		categories: &fakeCategoryRepository{categories: map[uuid.UUID]*entity.Category{
			fixedCat.ID:   fixedCat,
			foreignCat.ID: foreignCat,
		}},
		accounts:   &fakeAccountRepository{accounts: map[uuid.UUID]*entity.Account{fixedAcc.ID: fixedAcc}},
		fixedCat:   fixedCat,
		foreignCat: foreignCat,
		fixedAcc:   fixedAcc,
	}
}

func expenseErrorCode(t *testing.T, err error) domainerror.ExpenseErrorCode {
	t.Helper()
	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) {
		t.Fatalf("expected ExpenseError, got %v", err)
	}
	return expenseErr.Code
}

func TestCreateExpenseUseCase(t *testing.T) {
	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	missing := uuid.New()

	tests := []struct {
		name         string
		input        func(f *fixture) CreateExpenseInput
		expectedType entity.ExpenseType
		expectedCode domainerror.ExpenseErrorCode
	}{
		{
			name: "explicit type wins",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(100), Type: entity.ExpenseTypeVariable, AccountID: &f.fixedAcc.ID}
			},
			expectedType: entity.ExpenseTypeVariable,
		},
		{
			name: "type inferred from account",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "VPS", Amount: decimal.NewFromInt(50), AccountID: &f.fixedAcc.ID}
			},
			expectedType: entity.ExpenseTypeFixed,
		},
		{
			name: "type inferred from category",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "IDE", Amount: decimal.NewFromInt(20), CategoryID: &f.fixedCat.ID}
			},
			expectedType: entity.ExpenseTypeFixed,
		},
		{
			name: "defaults to variable",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Misc", Amount: decimal.Zero}
			},
			expectedType: entity.ExpenseTypeVariable,
		},
		{
			name: "missing description",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "   ", Amount: decimal.NewFromInt(1)}
			},
			expectedCode: domainerror.ErrCodeExpenseDescriptionRequired,
		},
		{
			name: "negative amount",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(-1)}
			},
			expectedCode: domainerror.ErrCodeNegativeExpenseAmount,
		},
		{
			name: "invalid type",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(1), Type: "monthly"}
			},
			expectedCode: domainerror.ErrCodeInvalidExpenseType,
		},
		{
			name: "missing date",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Description: "Ads", Amount: decimal.NewFromInt(1)}
			},
			expectedCode: domainerror.ErrCodeInvalidExpenseDate,
		},
		{
			name: "unknown category",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(1), CategoryID: &missing}
			},
			expectedCode: domainerror.ErrCodeExpenseCategoryNotFound,
		},
		{
			name: "category of another user",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(1), CategoryID: &f.foreignCat.ID}
			},
			expectedCode: domainerror.ErrCodeExpenseCategoryNotFound,
		},
		{
			name: "unknown account",
			input: func(f *fixture) CreateExpenseInput {
				return CreateExpenseInput{UserID: f.userID, Date: date, Description: "Ads", Amount: decimal.NewFromInt(1), AccountID: &missing}
			},
			expectedCode: domainerror.ErrCodeExpenseAccountNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewCreateExpenseUseCase(f.expenses, f.categories, f.accounts)

			output, err := uc.Execute(context.Background(), tt.input(f))
			if tt.expectedCode != "" {
				if code := expenseErrorCode(t, err); code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if output.Expense.Type != tt.expectedType {
				t.Errorf("expected type %s, got %s", tt.expectedType, output.Expense.Type)
			}
			if len(f.expenses.expenses) != 1 {
				t.Errorf("expected one persisted expense, got %d", len(f.expenses.expenses))
			}
		})
	}
}

func TestListExpensesUseCase(t *testing.T) {
	f := newFixture()
	uc := NewListExpensesUseCase(f.expenses)

	fixed := entity.ExpenseTypeFixed
	if _, err := uc.Execute(context.Background(), ListExpensesInput{UserID: f.userID, Type: &fixed}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.expenses.lastList.Type == nil || *f.expenses.lastList.Type != fixed {
		t.Errorf("expected type filter to be forwarded, got %+v", f.expenses.lastList)
	}

	invalid := entity.ExpenseType("yearly")
	_, err := uc.Execute(context.Background(), ListExpensesInput{UserID: f.userID, Type: &invalid})
	if code := expenseErrorCode(t, err); code != domainerror.ErrCodeInvalidExpenseType {
		t.Errorf("expected %s, got %s", domainerror.ErrCodeInvalidExpenseType, code)
	}
}

func TestUpdateExpenseUseCase(t *testing.T) {
	t.Run("clears category and changes amount", func(t *testing.T) {
		f := newFixture()
		existing := entity.NewExpense(f.userID, time.Now(), "IDE", &f.fixedCat.ID, nil, decimal.NewFromInt(10), entity.ExpenseTypeFixed)
		f.expenses.expenses[existing.ID] = existing

		amount := decimal.NewFromInt(25)
		output, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.accounts).Execute(context.Background(), UpdateExpenseInput{
			ExpenseID:     existing.ID,
			UserID:        f.userID,
			Amount:        &amount,
			ClearCategory: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.CategoryID != nil {
			t.Error("expected category to be cleared")
		}
		if !output.Expense.Amount.Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, output.Expense.Amount)
		}
	})

	t.Run("rejects foreign category", func(t *testing.T) {
		f := newFixture()
		existing := entity.NewExpense(f.userID, time.Now(), "IDE", nil, nil, decimal.NewFromInt(10), entity.ExpenseTypeFixed)
		f.expenses.expenses[existing.ID] = existing

		_, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.accounts).Execute(context.Background(), UpdateExpenseInput{
			ExpenseID:  existing.ID,
			UserID:     f.userID,
			CategoryID: &f.foreignCat.ID,
		})
		if code := expenseErrorCode(t, err); code != domainerror.ErrCodeExpenseCategoryNotFound {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeExpenseCategoryNotFound, code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		_, err := NewUpdateExpenseUseCase(f.expenses, f.categories, f.accounts).Execute(context.Background(), UpdateExpenseInput{
			ExpenseID: uuid.New(),
			UserID:    f.userID,
		})
		if code := expenseErrorCode(t, err); code != domainerror.ErrCodeExpenseNotFound {
			t.Errorf("expected %s, got %s", domainerror.ErrCodeExpenseNotFound, code)
		}
	})
}

func TestDeleteExpenseUseCase(t *testing.T) {
	f := newFixture()
	existing := entity.NewExpense(f.userID, time.Now(), "IDE", nil, nil, decimal.NewFromInt(10), entity.ExpenseTypeFixed)
	f.expenses.expenses[existing.ID] = existing
	uc := NewDeleteExpenseUseCase(f.expenses)

	if err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: existing.ID, UserID: uuid.New()}); err == nil {
		t.Fatal("expected error deleting another user's expense")
	}
	if err := uc.Execute(context.Background(), DeleteExpenseInput{ExpenseID: existing.ID, UserID: f.userID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.expenses.expenses) != 0 {
		t.Error("expected expense to be removed")
	}
}
