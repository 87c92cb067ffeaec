// Package account contains expense account use cases.
package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for listing accounts.
type ListAccountsInput struct {
	UserID uuid.UUID
}

// ListAccountsOutput groups accounts by expense type.
type ListAccountsOutput struct {
	Accounts []*entity.Account
	Fixed    []*entity.Account
	Variable []*entity.Account
}

// ListAccountsUseCase handles listing accounts.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{
		accountRepo: accountRepo,
	}
}

// Execute lists the user's accounts.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	accounts, err := uc.accountRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	output := &ListAccountsOutput{
		Accounts: accounts,
		Fixed:    make([]*entity.Account, 0),
		Variable: make([]*entity.Account, 0),
	}
	for _, account := range accounts {
		if account.Group == entity.ExpenseTypeFixed {
			output.Fixed = append(output.Fixed, account)
		} else {
			output.Variable = append(output.Variable, account)
		}
	}

	return output, nil
}
