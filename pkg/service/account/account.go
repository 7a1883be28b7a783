// Package account provides the external account registry: linking a user's
// third-party financial accounts, balance snapshots, and unlinking. The
// provider catalog is reference data only; the store accepts any
// (type, provider, name) combination the caller chooses.
package account

import (
	"context"
	"log/slog"

	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/money"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
)

// Service provides external account operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates an account Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Link creates an external account for the user. The balance string must
// parse as a decimal and is stored in canonical form.
func (s *Service) Link(
	ctx context.Context,
	userID uuid.UUID,
	provider string,
	accountType domain.AccountType,
	name, lastFour, balance string,
) (created *dto.ExternalAccountRead, err error) {
	normalized, err := money.NormalizeAmount(balance)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := domain.NewExternalAccount(userID, provider, accountType, name, lastFour, normalized)
		if err != nil {
			return err
		}
		create := &dto.ExternalAccountCreate{
			ID:       acc.ID,
			UserID:   acc.UserID,
			Provider: acc.Provider,
			Type:     string(acc.Type),
			Name:     acc.Name,
			LastFour: acc.LastFour,
			Balance:  acc.Balance,
		}
		if err := uow.ExternalAccountRepository().Create(ctx, create); err != nil {
			return err
		}
		created = &dto.ExternalAccountRead{
			ID:        create.ID,
			UserID:    create.UserID,
			Provider:  create.Provider,
			Type:      create.Type,
			Name:      create.Name,
			LastFour:  create.LastFour,
			Balance:   create.Balance,
			CreatedAt: acc.CreatedAt,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Link failed", "user_id", userID, "provider", provider, "error", err)
		return nil, err
	}
	s.logger.Info("External account linked", "user_id", userID, "account_id", created.ID)
	return created, nil
}

// Get retrieves one of the user's accounts; (nil, nil) when the account does
// not exist or belongs to someone else.
func (s *Service) Get(ctx context.Context, userID, accountID uuid.UUID) (acc *dto.ExternalAccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err = uow.ExternalAccountRepository().Get(ctx, accountID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if acc == nil || acc.UserID != userID {
		return nil, nil
	}
	return acc, nil
}

// List returns all of the user's linked accounts.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (accs []*dto.ExternalAccountRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accs, err = uow.ExternalAccountRepository().ListByUser(ctx, userID)
		return err
	})
	return accs, err
}

// UpdateBalance replaces the balance snapshot. No history is kept.
func (s *Service) UpdateBalance(ctx context.Context, userID, accountID uuid.UUID, balance string) error {
	normalized, err := money.NormalizeAmount(balance)
	if err != nil {
		return err
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.ExternalAccountRepository().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil || acc.UserID != userID {
			return domain.ErrNotFound
		}
		return uow.ExternalAccountRepository().Update(ctx, accountID, &dto.ExternalAccountUpdate{
			Balance: &normalized,
		})
	})
}

// Unlink removes the account. The store's cascade rule deletes every
// transaction referencing it; the user's other transactions are untouched.
func (s *Service) Unlink(ctx context.Context, userID, accountID uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.ExternalAccountRepository().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil || acc.UserID != userID {
			return domain.ErrNotFound
		}
		return uow.ExternalAccountRepository().Delete(ctx, accountID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("External account unlinked", "user_id", userID, "account_id", accountID)
	return nil
}
