// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/sales-tracker/backend/internal/application/usecase/account"
	"github.com/sales-tracker/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Group    string `json:"group" binding:"required,oneof=fixed variable"`
	Subgroup string `json:"subgroup" binding:"required,min=1,max=100"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Group    *string `json:"group,omitempty" binding:"omitempty,oneof=fixed variable"`
	Subgroup *string `json:"subgroup,omitempty" binding:"omitempty,min=1,max=100"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Group     string    `json:"group"`
	Subgroup  string    `json:"subgroup"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
	Fixed    []AccountResponse `json:"fixed"`
	Variable []AccountResponse `json:"variable"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID.String(),
		Name:      acc.Name,
		Group:     string(acc.Group),
		Subgroup:  acc.Subgroup,
		CreatedAt: acc.CreatedAt,
		UpdatedAt: acc.UpdatedAt,
	}
}

// ToAccountListResponse converts a ListAccountsOutput to AccountListResponse.
func ToAccountListResponse(output *account.ListAccountsOutput) AccountListResponse {
	return AccountListResponse{
		Accounts: toAccountResponses(output.Accounts),
		Fixed:    toAccountResponses(output.Fixed),
		Variable: toAccountResponses(output.Variable),
	}
}

func toAccountResponses(accounts []*entity.Account) []AccountResponse {
	responses := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		responses[i] = ToAccountResponse(acc)
	}
	return responses
}
