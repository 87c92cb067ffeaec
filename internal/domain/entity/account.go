// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account groups expenses under a fixed or variable cost bucket with a subgroup,
// e.g. "Despesas Fixas / Aluguel".
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Group     ExpenseType
	Subgroup  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID uuid.UUID, name string, group ExpenseType, subgroup string) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Group:     group,
		Subgroup:  subgroup,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
