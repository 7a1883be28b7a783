// Package transaction provides the ledger: recording financial events for a
// user, optionally tied to an external account. Category and type are free
// text here on purpose; choosing sensible labels is the caller's job.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/money"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
)

// Service provides ledger operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a transaction Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateInput is the full set of caller-supplied fields for a new
// transaction. Date is the business date, not the insertion time.
type CreateInput struct {
	AccountID   *uuid.UUID
	Amount      string
	Description string
	Category    string
	Type        string
	Date        time.Time
	IsExternal  bool
}

// Create records a transaction for the user. When AccountID is set, the
// account must exist and belong to the same user.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in CreateInput) (created *dto.TransactionRead, err error) {
	normalized, err := money.NormalizeAmount(in.Amount)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if in.AccountID != nil {
			acc, err := uow.ExternalAccountRepository().Get(ctx, *in.AccountID)
			if err != nil {
				return err
			}
			if acc == nil || acc.UserID != userID {
				return domain.ErrInvalidReference
			}
		}
		tx, err := domain.NewTransaction(userID, in.AccountID, normalized, in.Description, in.Category, in.Type, in.Date)
		if err != nil {
			return err
		}
		tx.IsExternal = in.IsExternal
		create := &dto.TransactionCreate{
			ID:          tx.ID,
			UserID:      tx.UserID,
			AccountID:   tx.AccountID,
			Amount:      tx.Amount,
			Description: tx.Description,
			Category:    tx.Category,
			Type:        tx.Type,
			Date:        tx.Date,
			IsExternal:  tx.IsExternal,
		}
		if err := uow.TransactionRepository().Create(ctx, create); err != nil {
			return err
		}
		created = &dto.TransactionRead{
			ID:          create.ID,
			UserID:      create.UserID,
			AccountID:   create.AccountID,
			Amount:      create.Amount,
			Description: create.Description,
			Category:    create.Category,
			Type:        create.Type,
			Date:        create.Date,
			IsExternal:  create.IsExternal,
			CreatedAt:   tx.CreatedAt,
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Create transaction failed", "user_id", userID, "error", err)
		return nil, err
	}
	return created, nil
}

// Get retrieves one of the user's transactions; (nil, nil) when it does not
// exist or belongs to someone else.
func (s *Service) Get(ctx context.Context, userID, txID uuid.UUID) (tx *dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tx, err = uow.TransactionRepository().Get(ctx, txID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if tx == nil || tx.UserID != userID {
		return nil, nil
	}
	return tx, nil
}

// ListByUser returns the user's transactions, newest business date first.
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) (txs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err = uow.TransactionRepository().ListByUser(ctx, userID)
		return err
	})
	return txs, err
}

// ListByAccount returns the transactions of one of the user's external accounts.
func (s *Service) ListByAccount(ctx context.Context, userID, accountID uuid.UUID) (txs []*dto.TransactionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		acc, err := uow.ExternalAccountRepository().Get(ctx, accountID)
		if err != nil {
			return err
		}
		if acc == nil || acc.UserID != userID {
			return domain.ErrNotFound
		}
		txs, err = uow.TransactionRepository().ListByAccount(ctx, accountID)
		return err
	})
	return txs, err
}

// Update overwrites the non-nil fields of the transaction. There is no
// version history; the previous values are gone.
func (s *Service) Update(ctx context.Context, userID, txID uuid.UUID, update *dto.TransactionUpdate) error {
	if update.Amount != nil {
		normalized, err := money.NormalizeAmount(*update.Amount)
		if err != nil {
			return err
		}
		update.Amount = &normalized
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tx, err := uow.TransactionRepository().Get(ctx, txID)
		if err != nil {
			return err
		}
		if tx == nil || tx.UserID != userID {
			return domain.ErrNotFound
		}
		return uow.TransactionRepository().Update(ctx, txID, update)
	})
}

// Delete removes the transaction.
func (s *Service) Delete(ctx context.Context, userID, txID uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tx, err := uow.TransactionRepository().Get(ctx, txID)
		if err != nil {
			return err
		}
		if tx == nil || tx.UserID != userID {
			return domain.ErrNotFound
		}
		return uow.TransactionRepository().Delete(ctx, txID)
	})
}
