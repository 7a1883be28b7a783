package repository

import (
	"context"
	"errors"

	"github.com/finflow/finflow/pkg/dto"
	"github.com/finflow/finflow/pkg/repository"
	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a GORM-backed category repository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, create *dto.CategoryCreate) error {
	category := &Category{
		ID:   create.ID,
		Name: create.Name,
		Type: create.Type,
	}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return MapGormErrorToDomain(err)
	}
	create.ID = category.ID
	return nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*dto.CategoryRead, error) {
	var category Category
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoryToDTO(&category), nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*dto.CategoryRead, error) {
	var categories []Category
	if err := r.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoriesToDTO(categories), nil
}

func (r *categoryRepository) ListByType(ctx context.Context, categoryType string) ([]*dto.CategoryRead, error) {
	var categories []Category
	err := r.db.WithContext(ctx).
		Where("type = ?", categoryType).
		Order("name").
		Find(&categories).Error
	if err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapCategoriesToDTO(categories), nil
}

func mapCategoriesToDTO(categories []Category) []*dto.CategoryRead {
	result := make([]*dto.CategoryRead, 0, len(categories))
	for i := range categories {
		result = append(result, mapCategoryToDTO(&categories[i]))
	}
	return result
}

func mapCategoryToDTO(category *Category) *dto.CategoryRead {
	return &dto.CategoryRead{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
	}
}

var _ repository.CategoryRepository = (*categoryRepository)(nil)
