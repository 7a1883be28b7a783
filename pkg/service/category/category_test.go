package category_test

import (
	"context"
	"testing"

	"log/slog"

	"github.com/finflow/finflow/internal/fixtures/mocks"
	"github.com/finflow/finflow/pkg/catalog"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	categorysvc "github.com/finflow/finflow/pkg/service/category"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceWithMocks() (*categorysvc.Service, *mocks.UnitOfWork) {
	uow := mocks.NewUnitOfWork()
	svc := categorysvc.New(uow, slog.Default())
	return svc, uow
}

func TestSeed_FreshStore(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	uow.Categories.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
	uow.Categories.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Seed(context.Background(), catalog.SeedTierDefault)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.CategoriesForTier(catalog.SeedTierDefault)), created)
}

func TestSeed_SkipsExistingNames(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	existing := &dto.CategoryRead{ID: uuid.New(), Name: "whatever"}
	uow.Categories.On("GetByName", mock.Anything, mock.Anything).Return(existing, nil)

	created, err := svc.Seed(context.Background(), catalog.SeedTierDefault)
	require.NoError(t, err)
	assert.Zero(t, created)
	uow.Categories.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeed_InsertRaceCountsAsSkip(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	uow.Categories.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
	uow.Categories.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists)

	created, err := svc.Seed(context.Background(), catalog.SeedTierDefault)
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestSeed_ExtendedTierCoversBothLists(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	uow.Categories.On("GetByName", mock.Anything, mock.Anything).Return(nil, nil)
	uow.Categories.On("Create", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.Seed(context.Background(), catalog.SeedTierExtended)
	require.NoError(t, err)
	assert.Equal(t, len(catalog.CategoriesForTier(catalog.SeedTierExtended)), created)
	assert.Greater(t, created, len(catalog.DefaultCategories))
}

func TestList(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	want := []*dto.CategoryRead{
		{ID: uuid.New(), Name: "Salary", Type: "income"},
		{ID: uuid.New(), Name: "Food & Dining", Type: "expense"},
	}
	uow.Categories.On("List", mock.Anything).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListByType(t *testing.T) {
	t.Parallel()
	svc, uow := newCategoryServiceWithMocks()
	want := []*dto.CategoryRead{{ID: uuid.New(), Name: "Salary", Type: "income"}}
	uow.Categories.On("ListByType", mock.Anything, "income").Return(want, nil)

	got, err := svc.ListByType(context.Background(), domain.CategoryTypeIncome)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
