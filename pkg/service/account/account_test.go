package account_test

import (
	"context"
	"testing"

	"log/slog"

	"github.com/finflow/finflow/internal/fixtures/mocks"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	accountsvc "github.com/finflow/finflow/pkg/service/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountServiceWithMocks() (*accountsvc.Service, *mocks.UnitOfWork) {
	uow := mocks.NewUnitOfWork()
	svc := accountsvc.New(uow, slog.Default())
	return svc, uow
}

func TestLink_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	userID := uuid.New()
	uow.ExternalAccounts.On("Create", mock.Anything, mock.Anything).Return(nil)

	acc, err := svc.Link(context.Background(), userID, "Chase", domain.AccountTypeBank, "Checking", "4321", "1250.50")
	require.NoError(t, err)
	require.NotNil(t, acc)
	assert.Equal(t, userID, acc.UserID)
	assert.Equal(t, "Chase", acc.Provider)
	assert.Equal(t, "1250.5", acc.Balance)
	assert.NotEqual(t, uuid.Nil, acc.ID)
}

func TestLink_BadBalance(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()

	acc, err := svc.Link(context.Background(), uuid.New(), "Chase", domain.AccountTypeBank, "Checking", "4321", "not-a-number")
	require.Error(t, err)
	assert.Nil(t, acc)
	uow.ExternalAccounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLink_BadType(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountServiceWithMocks()

	acc, err := svc.Link(context.Background(), uuid.New(), "Chase", domain.AccountType("savings"), "Checking", "4321", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown account type")
	assert.Nil(t, acc)
}

func TestGet_OwnedAccount(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	userID := uuid.New()
	want := &dto.ExternalAccountRead{ID: uuid.New(), UserID: userID, Provider: "Chase"}
	uow.ExternalAccounts.On("Get", mock.Anything, want.ID).Return(want, nil)

	got, err := svc.Get(context.Background(), userID, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGet_ForeignAccountIsInvisible(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	other := &dto.ExternalAccountRead{ID: uuid.New(), UserID: uuid.New()}
	uow.ExternalAccounts.On("Get", mock.Anything, other.ID).Return(other, nil)

	got, err := svc.Get(context.Background(), uuid.New(), other.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestList(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	userID := uuid.New()
	want := []*dto.ExternalAccountRead{
		{ID: uuid.New(), UserID: userID, Provider: "Chase"},
		{ID: uuid.New(), UserID: userID, Provider: "Fidelity"},
	}
	uow.ExternalAccounts.On("ListByUser", mock.Anything, userID).Return(want, nil)

	got, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateBalance_Normalizes(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	userID := uuid.New()
	acc := &dto.ExternalAccountRead{ID: uuid.New(), UserID: userID, Balance: "100"}
	uow.ExternalAccounts.On("Get", mock.Anything, acc.ID).Return(acc, nil)
	uow.ExternalAccounts.On("Update", mock.Anything, acc.ID, mock.MatchedBy(func(u *dto.ExternalAccountUpdate) bool {
		return u.Balance != nil && *u.Balance == "2500.4"
	})).Return(nil)

	err := svc.UpdateBalance(context.Background(), userID, acc.ID, "2500.40")
	require.NoError(t, err)
	uow.ExternalAccounts.AssertExpectations(t)
}

func TestUpdateBalance_ForeignAccount(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	other := &dto.ExternalAccountRead{ID: uuid.New(), UserID: uuid.New()}
	uow.ExternalAccounts.On("Get", mock.Anything, other.ID).Return(other, nil)

	err := svc.UpdateBalance(context.Background(), uuid.New(), other.ID, "10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	uow.ExternalAccounts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlink_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	userID := uuid.New()
	acc := &dto.ExternalAccountRead{ID: uuid.New(), UserID: userID}
	uow.ExternalAccounts.On("Get", mock.Anything, acc.ID).Return(acc, nil)
	uow.ExternalAccounts.On("Delete", mock.Anything, acc.ID).Return(nil)

	err := svc.Unlink(context.Background(), userID, acc.ID)
	require.NoError(t, err)
	uow.ExternalAccounts.AssertExpectations(t)
}

func TestUnlink_MissingAccount(t *testing.T) {
	t.Parallel()
	svc, uow := newAccountServiceWithMocks()
	uow.ExternalAccounts.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	err := svc.Unlink(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
