package user_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"log/slog"

	"github.com/finflow/finflow/internal/fixtures/mocks"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	usersvc "github.com/finflow/finflow/pkg/service/user"
	"github.com/finflow/finflow/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to create a service with mocks
func newUserServiceWithMocks() (*usersvc.Service, *mocks.UnitOfWork) {
	uow := mocks.NewUnitOfWork()
	svc := usersvc.New(uow, slog.Default())
	return svc, uow
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	uow.Users.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	uow.Users.On("Create", mock.Anything, mock.Anything).Return(nil)

	u, err := svc.CreateUser(context.Background(), "alice", "alice@example.com", "password123")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Name)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.True(t, utils.CheckPasswordHash("password123", u.Password))
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	uow.Users.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(true, nil)

	u, err := svc.CreateUser(context.Background(), "bob", "bob@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Nil(t, u)
	uow.Users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUser_InsertRaceSurfacesConflict(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	uow.Users.On("ExistsByEmail", mock.Anything, "bob@example.com").Return(false, nil)
	uow.Users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists)

	u, err := svc.CreateUser(context.Background(), "bob", "bob@example.com", "password123")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Nil(t, u)
}

func TestGetUser_Success(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	want := &dto.UserRead{ID: uuid.New(), Name: "alice", Email: "alice@example.com"}
	uow.Users.On("Get", mock.Anything, want.ID).Return(want, nil)

	got, err := svc.GetUser(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	uow.Users.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	got, err := svc.GetUser(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetUserByEmail(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	want := &dto.UserRead{ID: uuid.New(), Email: "alice@example.com"}
	uow.Users.On("GetByEmail", mock.Anything, "alice@example.com").Return(want, nil)

	got, err := svc.GetUserByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestUpdateUser_HashesPassword(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	id := uuid.New()
	uow.Users.On("Update", mock.Anything, id, mock.MatchedBy(func(u *dto.UserUpdate) bool {
		return u.Password != nil && utils.CheckPasswordHash("newpassword1", *u.Password)
	})).Return(nil)

	password := "newpassword1"
	err := svc.UpdateUser(context.Background(), id, &dto.UserUpdate{Password: &password})
	require.NoError(t, err)
	uow.Users.AssertExpectations(t)
}

func TestMarkEmailVerified(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	id := uuid.New()
	uow.Users.On("Update", mock.Anything, id, mock.MatchedBy(func(u *dto.UserUpdate) bool {
		return u.EmailVerified != nil
	})).Return(nil)

	err := svc.MarkEmailVerified(context.Background(), id, time.Now().UTC())
	require.NoError(t, err)
	uow.Users.AssertExpectations(t)
}

func TestDeleteUser_RepoError(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	uow.Users.On("Delete", mock.Anything, mock.Anything).Return(errors.New("db error"))

	err := svc.DeleteUser(context.Background(), uuid.New())
	require.Error(t, err)
}

func TestLinkProvider(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	userID := uuid.New()
	uow.ProviderLinks.On("Create", mock.Anything, mock.Anything).Return(nil)

	link, err := svc.LinkProvider(context.Background(), userID, "oauth", "google", "g-123")
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, userID, link.UserID)
	assert.Equal(t, "google", link.Provider)
	assert.Equal(t, "g-123", link.ProviderAccountID)
}

func TestListProviderLinks(t *testing.T) {
	t.Parallel()
	svc, uow := newUserServiceWithMocks()
	userID := uuid.New()
	want := []*dto.ProviderLinkRead{{ID: uuid.New(), UserID: userID, Provider: "google"}}
	uow.ProviderLinks.On("ListByUser", mock.Anything, userID).Return(want, nil)

	got, err := svc.ListProviderLinks(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
