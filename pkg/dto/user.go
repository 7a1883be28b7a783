// Package dto defines the data-transfer shapes exchanged between services and
// repositories: write models for create/update and read-optimized views.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate is the write model for inserting a user.
type UserCreate struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Image    string
	Password string
}

// UserRead is the read model of a user row.
type UserRead struct {
	ID             uuid.UUID
	Name           string
	Email          string
	EmailVerified  *time.Time
	Image          string
	HashedPassword string
	CreatedAt      time.Time
}

// UserUpdate carries optional field updates; nil fields are left untouched.
type UserUpdate struct {
	Name          *string
	Image         *string
	Password      *string
	EmailVerified *time.Time
}

// ProviderLinkCreate is the write model for linking a provider identity.
type ProviderLinkCreate struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      string
	AccessToken       string
	ExpiresAt         *time.Time
	TokenType         string
	Scope             string
	IDToken           string
	SessionState      string
}

// ProviderLinkRead is the read model of a provider link row.
type ProviderLinkRead struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Type              string
	Provider          string
	ProviderAccountID string
	RefreshToken      string
	AccessToken       string
	ExpiresAt         *time.Time
	TokenType         string
	Scope             string
	IDToken           string
	SessionState      string
}
