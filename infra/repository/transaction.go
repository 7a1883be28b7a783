package repository

import (
	"context"
	"errors"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository returns a GORM-backed transaction repository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	tx := &Transaction{
		ID:          create.ID,
		UserID:      create.UserID,
		AccountID:   create.AccountID,
		Amount:      create.Amount,
		Description: create.Description,
		Category:    create.Category,
		Type:        create.Type,
		Date:        create.Date,
		IsExternal:  create.IsExternal,
	}
	if err := r.db.WithContext(ctx).Create(tx).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	create.ID = tx.ID
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	var tx Transaction
	if err := r.db.WithContext(ctx).First(&tx, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionToDTO(&tx), nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txs).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionsToDTO(txs), nil
}

func (r *transactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	var txs []Transaction
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("date DESC").
		Find(&txs).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransactionsToDTO(txs), nil
}

func (r *transactionRepository) Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error {
	updates := make(map[string]interface{})

	if update.Amount != nil {
		updates["amount"] = *update.Amount
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.Category != nil {
		updates["category"] = *update.Category
	}
	if update.Type != nil {
		updates["type"] = *update.Type
	}
	if update.Date != nil {
		updates["date"] = *update.Date
	}

	if len(updates) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", id).
		Updates(updates).Error
	return MapGormErrorToDomain(err)
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return MapGormErrorToDomain(
		r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id).Error,
	)
}

func mapTransactionsToDTO(txs []Transaction) []*dto.TransactionRead {
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		result = append(result, mapTransactionToDTO(&txs[i]))
	}
	return result
}

func mapTransactionToDTO(tx *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:          tx.ID,
		UserID:      tx.UserID,
		AccountID:   tx.AccountID,
		Amount:      tx.Amount,
		Description: tx.Description,
		Category:    tx.Category,
		Type:        tx.Type,
		Date:        tx.Date,
		IsExternal:  tx.IsExternal,
		CreatedAt:   tx.CreatedAt,
	}
}

var _ repository.TransactionRepository = (*transactionRepository)(nil)
