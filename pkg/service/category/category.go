// Package category provides the category catalog: idempotent seeding from
// the static tiers and read access. Transactions reference categories by
// name only; nothing here constrains the ledger.
package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finflow/finflow/pkg/catalog"
	"github.com/finflow/finflow/pkg/domain"
	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
)

// Service provides category catalog operations over a UnitOfWork.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a category Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Seed inserts the seed list of the tier. Names already present are skipped:
// the unique-name conflict counts as success, so Seed can run on every
// startup. Each row gets its own transaction: a unique violation aborts a
// Postgres transaction, so batching the whole list would turn one existing
// name into a failed seed. Returns the number of rows actually created.
func (s *Service) Seed(ctx context.Context, tier catalog.SeedTier) (created int, err error) {
	seeds := catalog.CategoriesForTier(tier)
	for _, seed := range seeds {
		c, err := domain.NewCategory(seed.Name, seed.Type)
		if err != nil {
			return created, err
		}
		err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
			existing, err := uow.CategoryRepository().GetByName(ctx, c.Name)
			if err != nil {
				return err
			}
			if existing != nil {
				return domain.ErrAlreadyExists
			}
			return uow.CategoryRepository().Create(ctx, &dto.CategoryCreate{
				ID:   c.ID,
				Name: c.Name,
				Type: string(c.Type),
			})
		})
		// a concurrent seeder may still win the insert race; both cases
		// mean the name is present, which is what seeding wants
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			s.logger.Error("Seed failed", "tier", tier, "category", c.Name, "error", err)
			return created, err
		}
		created++
	}
	s.logger.Info("Categories seeded", "tier", tier, "created", created, "total", len(seeds))
	return created, nil
}

// List returns every category, ordered by name.
func (s *Service) List(ctx context.Context) (categories []*dto.CategoryRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err = uow.CategoryRepository().List(ctx)
		return err
	})
	return categories, err
}

// ListByType returns the categories of one type, ordered by name.
func (s *Service) ListByType(ctx context.Context, categoryType domain.CategoryType) (categories []*dto.CategoryRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err = uow.CategoryRepository().ListByType(ctx, string(categoryType))
		return err
	})
	return categories, err
}
