package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CategoryType marks a category as income or expense.
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether the category type is one of the known kinds.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a named transaction label. Names are globally unique.
// Transactions reference categories by name only, without a foreign key.
type Category struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	CreatedAt time.Time    `json:"createdAt"`
}

// NewCategory creates a category with a fresh id.
func NewCategory(name string, categoryType CategoryType) (*Category, error) {
	if name == "" {
		return nil, errors.New("category name cannot be empty")
	}
	if !categoryType.Valid() {
		return nil, errors.New("unknown category type: " + string(categoryType))
	}
	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Type:      categoryType,
		CreatedAt: time.Now().UTC(),
	}, nil
}
