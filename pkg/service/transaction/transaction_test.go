package transaction_test

import (
	"context"
	"testing"
	"time"

	"log/slog"

	"github.com/finflow/finflow/internal/fixtures/mocks"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	txsvc "github.com/finflow/finflow/pkg/service/transaction"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTransactionServiceWithMocks() (*txsvc.Service, *mocks.UnitOfWork) {
	uow := mocks.NewUnitOfWork()
	svc := txsvc.New(uow, slog.Default())
	return svc, uow
}

func TestCreate_WithoutAccount(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	userID := uuid.New()
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Create(context.Background(), userID, txsvc.CreateInput{
		Amount:      "42.10",
		Description: "Groceries",
		Category:    "Food & Dining",
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, userID, tx.UserID)
	assert.Nil(t, tx.AccountID)
	assert.Equal(t, "42.1", tx.Amount)
	assert.False(t, tx.IsExternal)
	uow.ExternalAccounts.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestCreate_WithOwnedAccount(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	userID := uuid.New()
	acc := &dto.ExternalAccountRead{ID: uuid.New(), UserID: userID}
	uow.ExternalAccounts.On("Get", mock.Anything, acc.ID).Return(acc, nil)
	uow.Transactions.On("Create", mock.Anything, mock.Anything).Return(nil)

	tx, err := svc.Create(context.Background(), userID, txsvc.CreateInput{
		AccountID:   &acc.ID,
		Amount:      "-18.99",
		Description: "Card payment",
		Category:    "Bills & Utilities",
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
		IsExternal:  true,
	})
	require.NoError(t, err)
	require.NotNil(t, tx)
	require.NotNil(t, tx.AccountID)
	assert.Equal(t, acc.ID, *tx.AccountID)
	assert.True(t, tx.IsExternal)
}

func TestCreate_ForeignAccountRejected(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	acc := &dto.ExternalAccountRead{ID: uuid.New(), UserID: uuid.New()}
	uow.ExternalAccounts.On("Get", mock.Anything, acc.ID).Return(acc, nil)

	tx, err := svc.Create(context.Background(), uuid.New(), txsvc.CreateInput{
		AccountID:   &acc.ID,
		Amount:      "10",
		Description: "x",
		Category:    "Other",
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Nil(t, tx)
	uow.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_MissingAccountRejected(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	accID := uuid.New()
	uow.ExternalAccounts.On("Get", mock.Anything, accID).Return(nil, nil)

	_, err := svc.Create(context.Background(), uuid.New(), txsvc.CreateInput{
		AccountID:   &accID,
		Amount:      "10",
		Description: "x",
		Category:    "Other",
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestCreate_BadAmount(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()

	_, err := svc.Create(context.Background(), uuid.New(), txsvc.CreateInput{
		Amount:      "12,50",
		Description: "x",
		Category:    "Other",
		Type:        domain.TransactionTypeExpense,
		Date:        time.Now().UTC(),
	})
	require.Error(t, err)
	uow.Transactions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGet_ForeignTransactionIsInvisible(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	tx := &dto.TransactionRead{ID: uuid.New(), UserID: uuid.New()}
	uow.Transactions.On("Get", mock.Anything, tx.ID).Return(tx, nil)

	got, err := svc.Get(context.Background(), uuid.New(), tx.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListByUser(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	userID := uuid.New()
	want := []*dto.TransactionRead{
		{ID: uuid.New(), UserID: userID, Amount: "100"},
		{ID: uuid.New(), UserID: userID, Amount: "-20"},
	}
	uow.Transactions.On("ListByUser", mock.Anything, userID).Return(want, nil)

	got, err := svc.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListByAccount_RequiresOwnership(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	acc := &dto.ExternalAccountRead{ID: uuid.New(), UserID: uuid.New()}
	uow.ExternalAccounts.On("Get", mock.Anything, acc.ID).Return(acc, nil)

	_, err := svc.ListByAccount(context.Background(), uuid.New(), acc.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	uow.Transactions.AssertNotCalled(t, "ListByAccount", mock.Anything, mock.Anything)
}

func TestUpdate_NormalizesAmount(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	userID := uuid.New()
	tx := &dto.TransactionRead{ID: uuid.New(), UserID: userID}
	uow.Transactions.On("Get", mock.Anything, tx.ID).Return(tx, nil)
	uow.Transactions.On("Update", mock.Anything, tx.ID, mock.MatchedBy(func(u *dto.TransactionUpdate) bool {
		return u.Amount != nil && *u.Amount == "99.9"
	})).Return(nil)

	amount := "99.90"
	err := svc.Update(context.Background(), userID, tx.ID, &dto.TransactionUpdate{Amount: &amount})
	require.NoError(t, err)
	uow.Transactions.AssertExpectations(t)
}

func TestUpdate_ForeignTransaction(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	tx := &dto.TransactionRead{ID: uuid.New(), UserID: uuid.New()}
	uow.Transactions.On("Get", mock.Anything, tx.ID).Return(tx, nil)

	desc := "updated"
	err := svc.Update(context.Background(), uuid.New(), tx.ID, &dto.TransactionUpdate{Description: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newTransactionServiceWithMocks()
	userID := uuid.New()
	tx := &dto.TransactionRead{ID: uuid.New(), UserID: userID}
	uow.Transactions.On("Get", mock.Anything, tx.ID).Return(tx, nil)
	uow.Transactions.On("Delete", mock.Anything, tx.ID).Return(nil)

	err := svc.Delete(context.Background(), userID, tx.ID)
	require.NoError(t, err)
	uow.Transactions.AssertExpectations(t)
}
