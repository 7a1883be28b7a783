// Package mocks provides testify mocks for the repository contracts, shared
// by the service and webapi tests.
package mocks

import (
	"context"
	"time"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UnitOfWork is a mock repository.UnitOfWork whose Do runs the callback
// against the mock itself, so repository expectations apply inside the
// transaction boundary.
type UnitOfWork struct {
	mock.Mock
	Users              *UserRepository
	ProviderLinks      *ProviderLinkRepository
	Sessions           *SessionRepository
	VerificationTokens *VerificationTokenRepository
	ExternalAccounts   *ExternalAccountRepository
	Transactions       *TransactionRepository
	Categories         *CategoryRepository
}

// NewUnitOfWork builds a UnitOfWork with fresh repository mocks attached.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		Users:              &UserRepository{},
		ProviderLinks:      &ProviderLinkRepository{},
		Sessions:           &SessionRepository{},
		VerificationTokens: &VerificationTokenRepository{},
		ExternalAccounts:   &ExternalAccountRepository{},
		Transactions:       &TransactionRepository{},
		Categories:         &CategoryRepository{},
	}
}

func (m *UnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return fn(m)
}

func (m *UnitOfWork) UserRepository() repository.UserRepository { return m.Users }
func (m *UnitOfWork) ProviderLinkRepository() repository.ProviderLinkRepository {
	return m.ProviderLinks
}
func (m *UnitOfWork) SessionRepository() repository.SessionRepository { return m.Sessions }
func (m *UnitOfWork) VerificationTokenRepository() repository.VerificationTokenRepository {
	return m.VerificationTokens
}
func (m *UnitOfWork) ExternalAccountRepository() repository.ExternalAccountRepository {
	return m.ExternalAccounts
}
func (m *UnitOfWork) TransactionRepository() repository.TransactionRepository {
	return m.Transactions
}
func (m *UnitOfWork) CategoryRepository() repository.CategoryRepository { return m.Categories }

var _ repository.UnitOfWork = (*UnitOfWork)(nil)

// UserRepository is a mock repository.UserRepository.
type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*dto.UserRead)
	return u, args.Error(1)
}

func (m *UserRepository) Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

var _ repository.UserRepository = (*UserRepository)(nil)

// ProviderLinkRepository is a mock repository.ProviderLinkRepository.
type ProviderLinkRepository struct{ mock.Mock }

func (m *ProviderLinkRepository) Create(ctx context.Context, create *dto.ProviderLinkCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *ProviderLinkRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ProviderLinkRead, error) {
	args := m.Called(ctx, userID)
	links, _ := args.Get(0).([]*dto.ProviderLinkRead)
	return links, args.Error(1)
}

func (m *ProviderLinkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.ProviderLinkRepository = (*ProviderLinkRepository)(nil)

// SessionRepository is a mock repository.SessionRepository.
type SessionRepository struct{ mock.Mock }

func (m *SessionRepository) Create(ctx context.Context, create *dto.SessionCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *SessionRepository) GetByToken(ctx context.Context, token string) (*dto.SessionRead, error) {
	args := m.Called(ctx, token)
	s, _ := args.Get(0).(*dto.SessionRead)
	return s, args.Error(1)
}

func (m *SessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *SessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

var _ repository.SessionRepository = (*SessionRepository)(nil)

// VerificationTokenRepository is a mock repository.VerificationTokenRepository.
type VerificationTokenRepository struct{ mock.Mock }

func (m *VerificationTokenRepository) Create(ctx context.Context, create *dto.VerificationTokenCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *VerificationTokenRepository) Get(ctx context.Context, identifier, token string) (*dto.VerificationTokenRead, error) {
	args := m.Called(ctx, identifier, token)
	v, _ := args.Get(0).(*dto.VerificationTokenRead)
	return v, args.Error(1)
}

func (m *VerificationTokenRepository) Delete(ctx context.Context, identifier, token string) error {
	return m.Called(ctx, identifier, token).Error(0)
}

var _ repository.VerificationTokenRepository = (*VerificationTokenRepository)(nil)

// ExternalAccountRepository is a mock repository.ExternalAccountRepository.
type ExternalAccountRepository struct{ mock.Mock }

func (m *ExternalAccountRepository) Create(ctx context.Context, create *dto.ExternalAccountCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *ExternalAccountRepository) Get(ctx context.Context, id uuid.UUID) (*dto.ExternalAccountRead, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*dto.ExternalAccountRead)
	return a, args.Error(1)
}

func (m *ExternalAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.ExternalAccountRead, error) {
	args := m.Called(ctx, userID)
	accs, _ := args.Get(0).([]*dto.ExternalAccountRead)
	return accs, args.Error(1)
}

func (m *ExternalAccountRepository) Update(ctx context.Context, id uuid.UUID, update *dto.ExternalAccountUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *ExternalAccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.ExternalAccountRepository = (*ExternalAccountRepository)(nil)

// TransactionRepository is a mock repository.TransactionRepository.
type TransactionRepository struct{ mock.Mock }

func (m *TransactionRepository) Create(ctx context.Context, create *dto.TransactionCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *TransactionRepository) Get(ctx context.Context, id uuid.UUID) (*dto.TransactionRead, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*dto.TransactionRead)
	return tx, args.Error(1)
}

func (m *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, userID)
	txs, _ := args.Get(0).([]*dto.TransactionRead)
	return txs, args.Error(1)
}

func (m *TransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*dto.TransactionRead, error) {
	args := m.Called(ctx, accountID)
	txs, _ := args.Get(0).([]*dto.TransactionRead)
	return txs, args.Error(1)
}

func (m *TransactionRepository) Update(ctx context.Context, id uuid.UUID, update *dto.TransactionUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *TransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var _ repository.TransactionRepository = (*TransactionRepository)(nil)

// CategoryRepository is a mock repository.CategoryRepository.
type CategoryRepository struct{ mock.Mock }

func (m *CategoryRepository) Create(ctx context.Context, create *dto.CategoryCreate) error {
	return m.Called(ctx, create).Error(0)
}

func (m *CategoryRepository) GetByName(ctx context.Context, name string) (*dto.CategoryRead, error) {
	args := m.Called(ctx, name)
	c, _ := args.Get(0).(*dto.CategoryRead)
	return c, args.Error(1)
}

func (m *CategoryRepository) List(ctx context.Context) ([]*dto.CategoryRead, error) {
	args := m.Called(ctx)
	cs, _ := args.Get(0).([]*dto.CategoryRead)
	return cs, args.Error(1)
}

func (m *CategoryRepository) ListByType(ctx context.Context, categoryType string) ([]*dto.CategoryRead, error) {
	args := m.Called(ctx, categoryType)
	cs, _ := args.Get(0).([]*dto.CategoryRead)
	return cs, args.Error(1)
}

var _ repository.CategoryRepository = (*CategoryRepository)(nil)
