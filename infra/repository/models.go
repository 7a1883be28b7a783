package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user identity row. Email is unique; the user is the root
// of the ownership graph and every owned row cascades on delete.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:255"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	EmailVerified *time.Time
	Image         string `gorm:"size:1024"`
	Password      string `gorm:"size:255"`
	CreatedAt     time.Time
}

// TableName specifies the table name for the User model.
func (User) TableName() string { return "users" }

// BeforeCreate generates an id when the caller did not supply one.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ProviderLink represents an external auth provider identity row. The table
// keeps the name "accounts" used by the original auth schema.
type ProviderLink struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	User              User      `gorm:"constraint:OnDelete:CASCADE"`
	Type              string    `gorm:"not null;size:64"`
	Provider          string    `gorm:"not null;size:64;index"`
	ProviderAccountID string    `gorm:"not null;size:255"`
	RefreshToken      string
	AccessToken       string
	ExpiresAt         *time.Time
	TokenType         string `gorm:"size:64"`
	Scope             string `gorm:"size:255"`
	IDToken           string
	SessionState      string `gorm:"size:255"`
}

// TableName specifies the table name for the ProviderLink model.
func (ProviderLink) TableName() string { return "accounts" }

// BeforeCreate generates an id when the caller did not supply one.
func (p *ProviderLink) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Session represents a login session row keyed by a unique token.
type Session struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index"`
	User    User      `gorm:"constraint:OnDelete:CASCADE"`
	Token   string    `gorm:"column:session_token;uniqueIndex;not null;size:128"`
	Expires time.Time `gorm:"not null"`
}

// TableName specifies the table name for the Session model.
func (Session) TableName() string { return "sessions" }

// BeforeCreate generates an id when the caller did not supply one.
func (s *Session) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// VerificationToken is an ephemeral row keyed by the (identifier, token)
// pair. It has no user FK: the identifier is typically an email address.
type VerificationToken struct {
	Identifier string    `gorm:"primaryKey;size:255"`
	Token      string    `gorm:"primaryKey;size:128;index"`
	Expires    time.Time `gorm:"not null"`
}

// TableName specifies the table name for the VerificationToken model.
func (VerificationToken) TableName() string { return "verification_tokens" }

// ExternalAccount represents a linked financial account. Balance is an opaque
// decimal string snapshot, not a numeric column.
type ExternalAccount struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	User      User      `gorm:"constraint:OnDelete:CASCADE"`
	Provider  string    `gorm:"not null;size:64"`
	Type      string    `gorm:"not null;size:32"`
	Name      string    `gorm:"not null;size:255"`
	LastFour  string    `gorm:"size:4"`
	Balance   string    `gorm:"not null"`
	CreatedAt time.Time
}

// TableName specifies the table name for the ExternalAccount model.
func (ExternalAccount) TableName() string { return "external_accounts" }

// BeforeCreate generates an id when the caller did not supply one.
func (a *ExternalAccount) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Transaction represents a ledger row. Category and Type are free text on
// purpose; nothing ties them to the categories table. Deleting the referenced
// external account deletes its transactions, deleting the user deletes all.
type Transaction struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	User        User             `gorm:"constraint:OnDelete:CASCADE"`
	AccountID   *uuid.UUID       `gorm:"type:uuid;index"`
	Account     *ExternalAccount `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Amount      string           `gorm:"not null"`
	Description string           `gorm:"not null"`
	Category    string           `gorm:"not null;size:255"`
	Type        string           `gorm:"not null;size:32"`
	Date        time.Time        `gorm:"not null;index"`
	IsExternal  bool             `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string { return "transactions" }

// BeforeCreate generates an id when the caller did not supply one.
func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Category is a catalog row; the name is unique across the table.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	Type      string    `gorm:"not null;size:32"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string { return "categories" }

// BeforeCreate generates an id when the caller did not supply one.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// AllModels lists every persisted model for migration.
func AllModels() []any {
	return []any{
		&User{},
		&ProviderLink{},
		&Session{},
		&VerificationToken{},
		&ExternalAccount{},
		&Transaction{},
		&Category{},
	}
}
