// Package user provides business logic for identity records: creation with
// the unique-email guarantee, lookups, updates, deletion, and provider links.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/finflow/finflow/pkg/utils"
	"github.com/google/uuid"
)

// Service provides user management operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a user Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser creates a user with a hashed password. A duplicate email is
// surfaced as domain.ErrAlreadyExists, never merged with the existing row.
func (s *Service) CreateUser(
	ctx context.Context,
	name, email, password string,
) (u *domain.User, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		// pre-check before the bcrypt hash; the unique index still
		// backs the insert race
		taken, err := uow.UserRepository().ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}
		u, err = domain.NewUser(name, email, password)
		if err != nil {
			return err
		}
		return uow.UserRepository().Create(ctx, &dto.UserCreate{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Password: u.Password,
		})
	})
	if err != nil {
		s.logger.Error("CreateUser failed", "email", email, "error", err)
		return nil, err
	}
	s.logger.Info("User created", "user_id", u.ID)
	return u, nil
}

// GetUser retrieves a user by id; (nil, nil) when absent.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err = uow.UserRepository().Get(ctx, id)
		return err
	})
	return u, err
}

// GetUserByEmail retrieves a user by email; (nil, nil) when absent.
func (s *Service) GetUserByEmail(ctx context.Context, email string) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err = uow.UserRepository().GetByEmail(ctx, email)
		return err
	})
	return u, err
}

// UpdateUser applies the non-nil fields of the update. A plain-text password
// in the update is hashed before it reaches the store.
func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	if update.Password != nil {
		hashed, err := utils.HashPassword(*update.Password)
		if err != nil {
			return err
		}
		update.Password = &hashed
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.UserRepository().Update(ctx, id, update)
	})
}

// MarkEmailVerified stamps the user's email verification time.
func (s *Service) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.UserRepository().Update(ctx, id, &dto.UserUpdate{EmailVerified: &at})
	})
}

// DeleteUser removes the user. The store's cascade rules take every owned
// row with it: provider links, sessions, external accounts, transactions.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.UserRepository().Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("DeleteUser failed", "user_id", id, "error", err)
		return err
	}
	s.logger.Info("User deleted", "user_id", id)
	return nil
}

// LinkProvider attaches an external auth provider identity to the user.
func (s *Service) LinkProvider(
	ctx context.Context,
	userID uuid.UUID,
	linkType, provider, providerAccountID string,
) (link *domain.ProviderLink, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		link, err = domain.NewProviderLink(userID, linkType, provider, providerAccountID)
		if err != nil {
			return err
		}
		return uow.ProviderLinkRepository().Create(ctx, &dto.ProviderLinkCreate{
			ID:                link.ID,
			UserID:            link.UserID,
			Type:              link.Type,
			Provider:          link.Provider,
			ProviderAccountID: link.ProviderAccountID,
		})
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

// ListProviderLinks returns the user's linked provider identities.
func (s *Service) ListProviderLinks(ctx context.Context, userID uuid.UUID) (links []*dto.ProviderLinkRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		links, err = uow.ProviderLinkRepository().ListByUser(ctx, userID)
		return err
	})
	return links, err
}
