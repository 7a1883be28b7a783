package domain

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// Session is a server-side login session keyed by a unique opaque token.
// Expiry is evaluated at lookup time; rows are not reaped in the background.
type Session struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"userId"`
	Token   string    `json:"sessionToken"`
	Expires time.Time `json:"expires"`
}

// NewSession issues a session for the user with a freshly generated token.
func NewSession(userID uuid.UUID, ttl time.Duration) *Session {
	return &Session{
		ID:      uuid.New(),
		UserID:  userID,
		Token:   NewToken(),
		Expires: time.Now().UTC().Add(ttl),
	}
}

// Expired reports whether the session is past its expiration at the given instant.
func (s *Session) Expired(at time.Time) bool {
	return !s.Expires.After(at)
}

// VerificationToken is a short-lived proof of control over an identifier
// (typically an email address). It is consumed on successful verification.
type VerificationToken struct {
	Identifier string    `json:"identifier"`
	Token      string    `json:"token"`
	Expires    time.Time `json:"expires"`
}

// NewVerificationToken creates a token for the identifier with the given lifetime.
func NewVerificationToken(identifier string, ttl time.Duration) *VerificationToken {
	return &VerificationToken{
		Identifier: identifier,
		Token:      NewToken(),
		Expires:    time.Now().UTC().Add(ttl),
	}
}

// Expired reports whether the token is past its expiration at the given instant.
func (v *VerificationToken) Expired(at time.Time) bool {
	return !v.Expires.After(at)
}

// NewToken returns 32 bytes of cryptographic randomness, hex encoded.
// Uniqueness is additionally enforced by the store's unique index.
func NewToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b)
}
