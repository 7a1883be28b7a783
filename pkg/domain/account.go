package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AccountType classifies a linked external financial account.
type AccountType string

const (
	AccountTypeCredit     AccountType = "credit"
	AccountTypeBank       AccountType = "bank"
	AccountTypeInvestment AccountType = "investment"
)

// Valid reports whether the account type is one of the known kinds.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCredit, AccountTypeBank, AccountTypeInvestment:
		return true
	}
	return false
}

// ExternalAccount is a user's linked third-party financial account. Balance is
// an opaque decimal string snapshot, replaced in place on update.
type ExternalAccount struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"userId"`
	Provider  string      `json:"provider"`
	Type      AccountType `json:"type"`
	Name      string      `json:"name"`
	LastFour  string      `json:"lastFour,omitempty"`
	Balance   string      `json:"balance"`
	CreatedAt time.Time   `json:"createdAt"`
}

// NewExternalAccount links an external account to the user. The caller picks
// the (type, provider, name) combination; it is not checked against the
// provider catalog here.
func NewExternalAccount(
	userID uuid.UUID,
	provider string,
	accountType AccountType,
	name, lastFour, balance string,
) (*ExternalAccount, error) {
	if provider == "" {
		return nil, errors.New("provider cannot be empty")
	}
	if !accountType.Valid() {
		return nil, errors.New("unknown account type: " + string(accountType))
	}
	if name == "" {
		return nil, errors.New("account name cannot be empty")
	}
	return &ExternalAccount{
		ID:        uuid.New(),
		UserID:    userID,
		Provider:  provider,
		Type:      accountType,
		Name:      name,
		LastFour:  lastFour,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}, nil
}
