package repository

import (
	"context"
	"errors"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a GORM-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	user := &User{
		ID:       create.ID,
		Name:     create.Name,
		Email:    create.Email,
		Image:    create.Image,
		Password: create.Password,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	create.ID = user.ID
	return nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(&user), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapUserToDTO(&user), nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	updates := make(map[string]interface{})

	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Image != nil {
		updates["image"] = *update.Image
	}
	if update.Password != nil {
		updates["password"] = *update.Password
	}
	if update.EmailVerified != nil {
		updates["email_verified"] = *update.EmailVerified
	}

	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
	return MapGormErrorToDomain(err)
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&User{}, "id = ?", id).Error,
	)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, MapGormErrorToDomain(err)
	}
	return count > 0, nil
}

func mapUserToDTO(user *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		EmailVerified:  user.EmailVerified,
		Image:          user.Image,
		HashedPassword: user.Password,
		CreatedAt:      user.CreatedAt,
	}
}

var _ repository.UserRepository = (*userRepository)(nil)

type providerLinkRepository struct {
	db *gorm.DB
}

// NewProviderLinkRepository returns a GORM-backed provider link repository.
func NewProviderLinkRepository(db *gorm.DB) repository.ProviderLinkRepository {
	return &providerLinkRepository{db: db}
}

func (r *providerLinkRepository) Create(ctx context.Context, create *dto.ProviderLinkCreate) error {
	link := &ProviderLink{
		ID:                create.ID,
		UserID:            create.UserID,
		Type:              create.Type,
		Provider:          create.Provider,
		ProviderAccountID: create.ProviderAccountID,
		RefreshToken:      create.RefreshToken,
		AccessToken:       create.AccessToken,
		ExpiresAt:         create.ExpiresAt,
		TokenType:         create.TokenType,
		Scope:             create.Scope,
		IDToken:           create.IDToken,
		SessionState:      create.SessionState,
	}
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	create.ID = link.ID
	return nil
}

func (r *providerLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ProviderLinkRead, error) {
	var links []ProviderLink
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&links).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.ProviderLinkRead, 0, len(links))
	for i := range links {
		result = append(result, mapProviderLinkToDTO(&links[i]))
	}
	return result, nil
}

func (r *providerLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&ProviderLink{}, "id = ?", id).Error,
	)
}

func mapProviderLinkToDTO(link *ProviderLink) *dto.ProviderLinkRead {
	return &dto.ProviderLinkRead{
		ID:                link.ID,
		UserID:            link.UserID,
		Type:              link.Type,
		Provider:          link.Provider,
		ProviderAccountID: link.ProviderAccountID,
		RefreshToken:      link.RefreshToken,
		AccessToken:       link.AccessToken,
		ExpiresAt:         link.ExpiresAt,
		TokenType:         link.TokenType,
		Scope:             link.Scope,
		IDToken:           link.IDToken,
		SessionState:      link.SessionState,
	}
}

var _ repository.ProviderLinkRepository = (*providerLinkRepository)(nil)
