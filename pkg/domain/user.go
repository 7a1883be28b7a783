package domain

import (
	"errors"
	"time"

	"github.com/finflow/finflow/pkg/utils"
	"github.com/google/uuid"
)

// User represents an identity record. Email is globally unique; the password
// credential is optional so that provider-only identities can exist.
type User struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name,omitempty"`
	Email         string     `json:"email"`
	EmailVerified *time.Time `json:"emailVerified,omitempty"`
	Image         string     `json:"image,omitempty"`
	Password      string     `json:"-"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// NewUser creates a User with a fresh id and a bcrypt-hashed password.
// An empty password is allowed: such users sign in through a linked provider.
func NewUser(name, email, password string) (*User, error) {
	if email == "" {
		return nil, errors.New("email cannot be empty")
	}
	if !utils.IsEmail(email) {
		return nil, errors.New("email is not valid")
	}
	u := &User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	if password != "" {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		u.Password = hashed
	}
	return u, nil
}

// ProviderLink records an external authentication provider identity attached
// to a user, together with the provider's OAuth token material.
type ProviderLink struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"userId"`
	Type              string     `json:"type"`
	Provider          string     `json:"provider"`
	ProviderAccountID string     `json:"providerAccountId"`
	RefreshToken      string     `json:"-"`
	AccessToken       string     `json:"-"`
	ExpiresAt         *time.Time `json:"expiresAt,omitempty"`
	TokenType         string     `json:"tokenType,omitempty"`
	Scope             string     `json:"scope,omitempty"`
	IDToken           string     `json:"-"`
	SessionState      string     `json:"sessionState,omitempty"`
}

// NewProviderLink creates a provider identity link for the given user.
func NewProviderLink(userID uuid.UUID, linkType, provider, providerAccountID string) (*ProviderLink, error) {
	if provider == "" || providerAccountID == "" {
		return nil, errors.New("provider and provider account id are required")
	}
	return &ProviderLink{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              linkType,
		Provider:          provider,
		ProviderAccountID: providerAccountID,
	}, nil
}
