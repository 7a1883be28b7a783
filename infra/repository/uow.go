package repository

import (
	"context"

	"github.com/finflow/finflow/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides a transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do are bound to the
// transaction session, so a write batch is atomic end to end.
type UoW struct {
	db *gorm.DB
}

// NewUoW creates a UoW over the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn within a database transaction. The UoW passed to fn hands out
// repositories bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: tx})
	})
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() repository.UserRepository {
	return NewUserRepository(u.db)
}

// ProviderLinkRepository returns a provider link repository bound to the current session.
func (u *UoW) ProviderLinkRepository() repository.ProviderLinkRepository {
	return NewProviderLinkRepository(u.db)
}

// SessionRepository returns a session repository bound to the current session.
func (u *UoW) SessionRepository() repository.SessionRepository {
	return NewSessionRepository(u.db)
}

// VerificationTokenRepository returns a verification token repository bound to the current session.
func (u *UoW) VerificationTokenRepository() repository.VerificationTokenRepository {
	return NewVerificationTokenRepository(u.db)
}

// ExternalAccountRepository returns an external account repository bound to the current session.
func (u *UoW) ExternalAccountRepository() repository.ExternalAccountRepository {
	return NewExternalAccountRepository(u.db)
}

// TransactionRepository returns a transaction repository bound to the current session.
func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.db)
}

// CategoryRepository returns a category repository bound to the current session.
func (u *UoW) CategoryRepository() repository.CategoryRepository {
	return NewCategoryRepository(u.db)
}

var _ repository.UnitOfWork = (*UoW)(nil)
