package dto

import (
	"time"

	"github.com/google/uuid"
)

// SessionCreate is the write model for issuing a session.
type SessionCreate struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Token   string
	Expires time.Time
}

// SessionRead is the read model of a session row.
type SessionRead struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Token   string
	Expires time.Time
}

// VerificationTokenCreate is the write model for a verification token.
type VerificationTokenCreate struct {
	Identifier string
	Token      string
	Expires    time.Time
}

// VerificationTokenRead is the read model of a verification token row.
type VerificationTokenRead struct {
	Identifier string
	Token      string
	Expires    time.Time
}
