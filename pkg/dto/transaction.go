package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionCreate is the write model for recording a transaction.
// A zero ID asks the store to generate one; a nil AccountID records a
// transaction not tied to any external account.
type TransactionCreate struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	Amount      string
	Description string
	Category    string
	Type        string
	Date        time.Time
	IsExternal  bool
}

// TransactionRead is the read model of a transaction row.
type TransactionRead struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	AccountID   *uuid.UUID
	Amount      string
	Description string
	Category    string
	Type        string
	Date        time.Time
	IsExternal  bool
	CreatedAt   time.Time
}

// TransactionUpdate carries optional field updates; nil fields are left
// untouched. Updates overwrite the row, no version history is kept.
type TransactionUpdate struct {
	Amount      *string
	Description *string
	Category    *string
	Type        *string
	Date        *time.Time
}
