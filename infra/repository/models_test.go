package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, model any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

func hasUniqueIndexOn(s *schema.Schema, column string) bool {
	for _, idx := range s.ParseIndexes() {
		if idx.Class != "UNIQUE" {
			continue
		}
		for _, opt := range idx.Fields {
			if opt.DBName == column {
				return true
			}
		}
	}
	return false
}

func TestOwnedModelsCascadeOnUserDelete(t *testing.T) {
	t.Parallel()
	owned := map[string]any{
		"provider link":    &ProviderLink{},
		"session":          &Session{},
		"external account": &ExternalAccount{},
		"transaction":      &Transaction{},
	}
	for name, model := range owned {
		s := parseSchema(t, model)
		rel := s.Relationships.Relations["User"]
		require.NotNil(t, rel, "%s must reference the user", name)
		constraint := rel.ParseConstraint()
		require.NotNil(t, constraint, "%s user FK must carry a constraint", name)
		assert.Equal(t, "CASCADE", constraint.OnDelete, "%s must cascade on user delete", name)
		require.Len(t, constraint.ForeignKeys, 1)
		assert.Equal(t, "UserID", constraint.ForeignKeys[0].Name)
	}
}

func TestTransactionCascadesOnAccountDelete(t *testing.T) {
	t.Parallel()
	s := parseSchema(t, &Transaction{})
	rel := s.Relationships.Relations["Account"]
	require.NotNil(t, rel)
	constraint := rel.ParseConstraint()
	require.NotNil(t, constraint)
	assert.Equal(t, "CASCADE", constraint.OnDelete)
	require.Len(t, constraint.ForeignKeys, 1)
	assert.Equal(t, "AccountID", constraint.ForeignKeys[0].Name)
}

func TestUniqueIndexes(t *testing.T) {
	t.Parallel()
	assert.True(t, hasUniqueIndexOn(parseSchema(t, &User{}), "email"))
	assert.True(t, hasUniqueIndexOn(parseSchema(t, &Session{}), "session_token"))
	assert.True(t, hasUniqueIndexOn(parseSchema(t, &Category{}), "name"))
}

func TestVerificationTokenCompositeKey(t *testing.T) {
	t.Parallel()
	s := parseSchema(t, &VerificationToken{})
	require.Len(t, s.PrimaryFields, 2)
	assert.Equal(t, "Identifier", s.PrimaryFields[0].Name)
	assert.Equal(t, "Token", s.PrimaryFields[1].Name)
}

func TestAllModelsListsEveryTable(t *testing.T) {
	t.Parallel()
	names := map[string]bool{}
	for _, model := range AllModels() {
		names[parseSchema(t, model).Table] = true
	}
	for _, table := range []string{
		"users", "accounts", "sessions", "verification_tokens",
		"external_accounts", "transactions", "categories",
	} {
		assert.True(t, names[table], "missing table %s", table)
	}
}
