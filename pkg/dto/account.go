package dto

import (
	"time"

	"github.com/google/uuid"
)

// ExternalAccountCreate is the write model for linking an external account.
// A zero ID asks the store to generate one.
type ExternalAccountCreate struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Provider string
	Type     string
	Name     string
	LastFour string
	Balance  string
}

// ExternalAccountRead is the read model of an external account row.
type ExternalAccountRead struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Provider  string
	Type      string
	Name      string
	LastFour  string
	Balance   string
	CreatedAt time.Time
}

// ExternalAccountUpdate carries optional field updates; nil fields are left
// untouched. Balance updates replace the snapshot, there is no history.
type ExternalAccountUpdate struct {
	Name    *string
	Balance *string
}
