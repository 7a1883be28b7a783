package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/finflow/finflow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "nil error returns nil",
			input:    nil,
			expected: nil,
		},
		{
			name:     "duplicate key maps to ErrAlreadyExists",
			input:    gorm.ErrDuplicatedKey,
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "foreign key violation maps to ErrInvalidReference",
			input:    gorm.ErrForeignKeyViolated,
			expected: domain.ErrInvalidReference,
		},
		{
			name:     "record not found maps to ErrNotFound",
			input:    gorm.ErrRecordNotFound,
			expected: domain.ErrNotFound,
		},
		{
			name:     "wrapped duplicate key maps correctly",
			input:    fmt.Errorf("create user: %w", gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, MapGormErrorToDomain(tt.input))
		})
	}
}

func TestMapGormErrorToDomain_PassesThroughUnknown(t *testing.T) {
	t.Parallel()
	unknown := errors.New("connection refused")
	assert.Equal(t, unknown, MapGormErrorToDomain(unknown))
}
