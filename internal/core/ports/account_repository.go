package ports

import (
	"context"

	"booking/internal/core/domain/model/account"
	"booking/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for login accounts.
type AccountRepository interface {
	// Add persists a new account. Partner accounts are added in the same
	// transaction as their ServicePartner profile.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByPhone retrieves an account by phone number. Phone is globally
	// unique across accounts.
	GetByPhone(ctx context.Context, phone string) (*account.Account, error)
}
