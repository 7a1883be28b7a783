package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Well-known transaction types. The store does not enforce these; Type is
// free text, like Category.
const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"
)

// Transaction is a single financial event owned by a user and optionally tied
// to an external account. Date is the business date; CreatedAt is the record
// timestamp. IsExternal marks rows synced from a linked account feed.
type Transaction struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	AccountID   *uuid.UUID `json:"accountId,omitempty"`
	Amount      string     `json:"amount"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Date        time.Time  `json:"date"`
	IsExternal  bool       `json:"isExternal"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// NewTransaction records a financial event. IsExternal defaults to false; use
// NewExternalTransaction for rows sourced from an account feed.
func NewTransaction(
	userID uuid.UUID,
	accountID *uuid.UUID,
	amount, description, category, txType string,
	date time.Time,
) (*Transaction, error) {
	if amount == "" {
		return nil, errors.New("amount cannot be empty")
	}
	if description == "" {
		return nil, errors.New("description cannot be empty")
	}
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Type:        txType,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// NewExternalTransaction records an event imported from a linked account feed.
func NewExternalTransaction(
	userID uuid.UUID,
	accountID uuid.UUID,
	amount, description, category, txType string,
	date time.Time,
) (*Transaction, error) {
	tx, err := NewTransaction(userID, &accountID, amount, description, category, txType, date)
	if err != nil {
		return nil, err
	}
	tx.IsExternal = true
	return tx, nil
}
