package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryCreate is the write model for inserting a category.
// A zero ID asks the store to generate one.
type CategoryCreate struct {
	ID   uuid.UUID
	Name string
	Type string
}

// CategoryRead is the read model of a category row.
type CategoryRead struct {
	ID        uuid.UUID
	Name      string
	Type      string
	CreatedAt time.Time
}
