// Package auth provides registration, credential sign-in, database-backed
// sessions, and verification tokens. Sessions are opaque unique tokens with
// an expiry checked at validation time; there is no background reaper.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/finflow/finflow/pkg/config"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/finflow/finflow/pkg/utils"
	"github.com/finflow/finflow/pkg/validation"
)

// Service provides authentication flows over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.AuthConfig
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, cfg config.AuthConfig, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Register validates the registration input and creates the user. Validation
// failures carry the field messages; a taken email surfaces as a conflict.
func (s *Service) Register(ctx context.Context, in validation.RegisterInput) (u *domain.User, err error) {
	if err = validation.ValidateRegister(in); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		// pre-check before the bcrypt hash; the unique index still
		// backs the insert race
		taken, err := uow.UserRepository().ExistsByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrAlreadyExists
		}
		u, err = domain.NewUser(in.Name, in.Email, in.Password)
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
		s.logger.Error("Register failed", "email", in.Email, "error", err)
		return nil, err
	}
	s.logger.Info("User registered", "user_id", u.ID)
	return u, nil
}

// SignIn validates the input, checks the credential, and issues a session.
// Unknown email, a provider-only user, or a wrong password all return
// domain.ErrUnauthorized without distinguishing which it was.
func (s *Service) SignIn(ctx context.Context, in validation.SignInInput) (session *dto.SessionRead, err error) {
	if err = validation.ValidateSignIn(in); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		u, err := uow.UserRepository().GetByEmail(ctx, in.Email)
		if err != nil {
			return err
		}
		if u == nil || u.HashedPassword == "" ||
			!utils.CheckPasswordHash(in.Password, u.HashedPassword) {
			return domain.ErrUnauthorized
		}
		fresh := domain.NewSession(u.ID, s.cfg.SessionTTL)
		create := &dto.SessionCreate{
			ID:      fresh.ID,
			UserID:  fresh.UserID,
			Token:   fresh.Token,
			Expires: fresh.Expires,
		}
		if err := uow.SessionRepository().Create(ctx, create); err != nil {
			return err
		}
		session = &dto.SessionRead{
			ID:      create.ID,
			UserID:  create.UserID,
			Token:   create.Token,
			Expires: create.Expires,
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("SignIn failed", "email", in.Email, "error", err)
		return nil, err
	}
	s.logger.Info("Session issued", "user_id", session.UserID)
	return session, nil
}

// ValidateSession resolves a session token. An absent or expired session is
// an authentication failure, not an empty result.
func (s *Service) ValidateSession(ctx context.Context, token string) (session *dto.SessionRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		session, err = uow.SessionRepository().GetByToken(ctx, token)
		return err
	})
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Expires.After(time.Now().UTC()) {
		return nil, domain.ErrUnauthorized
	}
	return session, nil
}

// SignOut destroys the session. Deleting an unknown token is a no-op.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return uow.SessionRepository().DeleteByToken(ctx, token)
	})
}

// PurgeExpiredSessions removes sessions past their expiry. Exposed for
// on-demand cleanup; nothing schedules it.
func (s *Service) PurgeExpiredSessions(ctx context.Context) (n int64, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		n, err = uow.SessionRepository().DeleteExpired(ctx, time.Now().UTC())
		return err
	})
	return n, err
}

// IssueVerificationToken creates a short-lived token proving control of the
// identifier, typically an email address.
func (s *Service) IssueVerificationToken(ctx context.Context, identifier string) (vt *domain.VerificationToken, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		vt = domain.NewVerificationToken(identifier, s.cfg.VerificationTokenTTL)
		return uow.VerificationTokenRepository().Create(ctx, &dto.VerificationTokenCreate{
			Identifier: vt.Identifier,
			Token:      vt.Token,
			Expires:    vt.Expires,
		})
	})
	if err != nil {
		return nil, err
	}
	return vt, nil
}

// ConsumeVerificationToken verifies and deletes the token, and stamps the
// matching user's email verification time when the identifier is a known
// email. An absent or expired token fails verification; expired rows are
// left to sit, they are not deleted here.
func (s *Service) ConsumeVerificationToken(ctx context.Context, identifier, token string) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		vt, err := uow.VerificationTokenRepository().Get(ctx, identifier, token)
		if err != nil {
			return err
		}
		if vt == nil || !vt.Expires.After(time.Now().UTC()) {
			return domain.ErrUnauthorized
		}
		if err := uow.VerificationTokenRepository().Delete(ctx, identifier, token); err != nil {
			return err
		}
		u, err := uow.UserRepository().GetByEmail(ctx, identifier)
		if err != nil {
			return err
		}
		if u == nil {
			return nil
		}
		now := time.Now().UTC()
		return uow.UserRepository().Update(ctx, u.ID, &dto.UserUpdate{EmailVerified: &now})
	})
}
