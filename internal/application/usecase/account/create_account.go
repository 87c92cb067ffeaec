// Package account contains expense account use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sales-tracker/backend/internal/application/adapter"
	"github.com/sales-tracker/backend/internal/domain/entity"
	domainerror "github.com/sales-tracker/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID   uuid.UUID
	Name     string
	Group    entity.ExpenseType
	Subgroup string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	subgroup := strings.TrimSpace(input.Subgroup)

	if err := validateAccount(name, input.Group, subgroup); err != nil {
		return nil, err
	}

	account := entity.NewAccount(input.UserID, name, input.Group, subgroup)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}

func validateAccount(name string, group entity.ExpenseType, subgroup string) error {
	if name == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameRequired,
			"name is required",
			domainerror.ErrAccountNameRequired,
		)
	}

	if !group.IsValid() {
		return domainerror.NewAccountError(
			domainerror.ErrCodeInvalidAccountGroup,
			"group must be 'fixed' or 'variable'",
			domainerror.ErrInvalidAccountGroup,
		)
	}

	if subgroup == "" {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountSubgroupRequired,
			"subgroup is required",
			domainerror.ErrAccountSubgroupRequired,
		)
	}

	return nil
}
