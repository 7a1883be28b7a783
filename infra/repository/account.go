package repository

import (
	"context"
	"errors"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type externalAccountRepository struct {
	db *gorm.DB
}

// NewExternalAccountRepository returns a GORM-backed external account repository.
func NewExternalAccountRepository(db *gorm.DB) repository.ExternalAccountRepository {
	return &externalAccountRepository{db: db}
}

func (r *externalAccountRepository) Create(ctx context.Context, create *dto.ExternalAccountCreate) error {
	account := &ExternalAccount{
		ID:       create.ID,
		UserID:   create.UserID,
		Provider: create.Provider,
		Type:     create.Type,
		Name:     create.Name,
		LastFour: create.LastFour,
		Balance:  create.Balance,
	}
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	// id may have been generated by the BeforeCreate hook
	create.ID = account.ID
	return nil
}

func (r *externalAccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.ExternalAccountRead, error) {
	var account ExternalAccount
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapExternalAccountToDTO(&account), nil
}

func (r *externalAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ExternalAccountRead, error) {
	var accounts []ExternalAccount
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&accounts).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	result := make([]*dto.ExternalAccountRead, 0, len(accounts))
	for i := range accounts {
		result = append(result, mapExternalAccountToDTO(&accounts[i]))
	}
	return result, nil
}

func (r *externalAccountRepository) Update(ctx context.Context, id uuid.UUID, update *dto.ExternalAccountUpdate) error {
	updates := make(map[string]interface{})

	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Balance != nil {
		updates["balance"] = *update.Balance
	}

	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&ExternalAccount{}).
		Where("id = ?", id).
		Updates(updates).Error
	return MapGormErrorToDomain(err)
}

func (r *externalAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&ExternalAccount{}, "id = ?", id).Error,
	)
}

func mapExternalAccountToDTO(account *ExternalAccount) *dto.ExternalAccountRead {
	return &dto.ExternalAccountRead{
		ID:        account.ID,
		UserID:    account.UserID,
		Provider:  account.Provider,
		Type:      account.Type,
		Name:      account.Name,
		LastFour:  account.LastFour,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}

var _ repository.ExternalAccountRepository = (*externalAccountRepository)(nil)
