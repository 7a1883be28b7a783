// Package repository defines the data-access contracts for the store.
// Lookups of a missing row return (nil, nil): absence is an empty result,
// not an error. Writes that violate uniqueness or referential integrity
// surface domain.ErrAlreadyExists / domain.ErrInvalidReference.
package repository

import (
	"context"
	"time"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/google/uuid"
)

// UserRepository defines data access for user identity records.
type UserRepository interface {
	// Create inserts a new user. A duplicate email surfaces as a conflict.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Get retrieves a user by id, or (nil, nil) when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by its unique email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// Update applies the non-nil fields of the update to the user row.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Delete removes the user; the store cascades to all owned rows.
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProviderLinkRepository defines data access for external provider identities.
type ProviderLinkRepository interface {
	Create(ctx context.Context, create *dto.ProviderLinkCreate) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ProviderLinkRead, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SessionRepository defines data access for login sessions. Expiry is a
// query-time predicate; GetByToken returns expired rows so the caller can
// decide, and DeleteExpired exists for on-demand cleanup only.
type SessionRepository interface {
	Create(ctx context.Context, create *dto.SessionCreate) error
	GetByToken(ctx context.Context, token string) (*dto.SessionRead, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// VerificationTokenRepository defines data access for verification tokens,
// keyed by the (identifier, token) pair.
type VerificationTokenRepository interface {
	Create(ctx context.Context, create *dto.VerificationTokenCreate) error
	Get(ctx context.Context, identifier, token string) (*dto.VerificationTokenRead, error)
	Delete(ctx context.Context, identifier, token string) error
}

// ExternalAccountRepository defines data access for linked external accounts.
type ExternalAccountRepository interface {
	// Create inserts the account. A zero create.ID is replaced by a
	// store-generated uuid and written back into the DTO.
	Create(ctx context.Context, create *dto.ExternalAccountCreate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.ExternalAccountRead, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ExternalAccountRead, error)
	Update(ctx context.Context, id uuid.UUID, update *dto.ExternalAccountUpdate) error

	// Delete removes the account; the store cascades to its transactions.
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines data access for ledger rows.
type TransactionRepository interface {
	// Create inserts the transaction. A zero create.ID is replaced by a
	// store-generated uuid and written back into the DTO.
	Create(ctx context.Context, create *dto.TransactionCreate) error

	Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error)

	// ListByUser returns the user's transactions ordered by business date,
	// newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListByAccount returns all transactions referencing the external account.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error)

	Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines data access for the category catalog.
type CategoryRepository interface {
	// Create inserts a category. A duplicate name surfaces as a conflict.
	Create(ctx context.Context, create *dto.CategoryCreate) error

	GetByName(ctx context.Context, name string) (*dto.CategoryRead, error)
	List(ctx context.Context) ([]*dto.CategoryRead, error)
	ListByType(ctx context.Context, categoryType string) ([]*dto.CategoryRead, error)
}

// UnitOfWork provides a transaction boundary and repository access in one
// abstraction, so every repository inside Do shares the same DB session.
type UnitOfWork interface {
	// Do runs fn inside a transaction; the UnitOfWork passed to fn hands out
	// repositories bound to that transaction.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() UserRepository
	ProviderLinkRepository() ProviderLinkRepository
	SessionRepository() SessionRepository
	VerificationTokenRepository() VerificationTokenRepository
	ExternalAccountRepository() ExternalAccountRepository
	TransactionRepository() TransactionRepository
	CategoryRepository() CategoryRepository
}
