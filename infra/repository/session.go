package repository

import (
	"context"
	"errors"
	"time"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"gorm.io/gorm"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository returns a GORM-backed session repository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, create *dto.SessionCreate) error {
	session := &Session{
		ID:      create.ID,
		UserID:  create.UserID,
		Token:   create.Token,
		Expires: create.Expires,
	}
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	create.ID = session.ID
	return nil
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*dto.SessionRead, error) {
	var session Session
	err := r.db.WithContext(ctx).Where("session_token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return &dto.SessionRead{
		ID:      session.ID,
		UserID:  session.UserID,
		Token:   session.Token,
		Expires: session.Expires,
	}, nil
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Where("session_token = ?", token).Delete(&Session{}).Error,
	)
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires <= ?", before).Delete(&Session{})
	return res.RowsAffected, MapGormErrorToDomain(res.Error)
}

var _ repository.SessionRepository = (*sessionRepository)(nil)

type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository returns a GORM-backed verification token repository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) Create(ctx context.Context, create *dto.VerificationTokenCreate) error {
	row := &VerificationToken{
		Identifier: create.Identifier,
		Token:      create.Token,
		Expires:    create.Expires,
	}
	return MapGormErrorToDomain(r.db.WithContext(ctx).Create(row).Error)
}

func (r *verificationTokenRepository) Get(ctx context.Context, identifier, token string) (*dto.VerificationTokenRead, error) {
	var row VerificationToken
	err := r.db.WithContext(ctx).
		Where("identifier = ? AND token = ?", identifier, token).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return &dto.VerificationTokenRead{
		Identifier: row.Identifier,
		Token:      row.Token,
		Expires:    row.Expires,
	}, nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, identifier, token string) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).
			Where("identifier = ? AND token = ?", identifier, token).
			Delete(&VerificationToken{}).Error,
	)
}

var _ repository.VerificationTokenRepository = (*verificationTokenRepository)(nil)
