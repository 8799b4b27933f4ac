package database_test

import (
	"path/filepath"
	"testing"

	"campus-portal/internal/database"
	"campus-portal/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	require.NoError(t, err)
	database.DB = db
	require.NoError(t, database.Migrate())
}

func mustCreateUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	hash, ok := database.HashPassword(password)
	require.True(t, ok)
	user := database.CreateUser(name, email, hash)
	require.NotNil(t, user)
	return user
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, ok := database.HashPassword("Secret1!pass")
	require.True(t, ok)
	assert.NotContains(t, hash, "Secret1!pass")

	assert.True(t, database.VerifyPassword("Secret1!pass", hash))
	assert.False(t, database.VerifyPassword("wrong-password", hash))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// a broken stored hash must read as a mismatch, not a fault
	assert.False(t, database.VerifyPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, database.VerifyPassword("anything", ""))
}

func TestFindUserByEmailCaseInsensitive(t *testing.T) {
	newTestDB(t)
	mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	lower := database.FindUserByEmail("alice@example.com")
	upper := database.FindUserByEmail("ALICE@EXAMPLE.COM")
	require.NotNil(t, lower)
	require.NotNil(t, upper)
	assert.Equal(t, lower.ID, upper.ID)
	assert.Equal(t, models.RoleUser, upper.Role.RoleName)
}

func TestFindUserByEmailMissing(t *testing.T) {
	newTestDB(t)
	assert.Nil(t, database.FindUserByEmail("nobody@example.com"))
}

func TestCreateUserNormalizesAndStripsHash(t *testing.T) {
	newTestDB(t)
	user := mustCreateUser(t, "Alice Example", "Alice@Example.COM", "Secret1!pass")

	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role.RoleName)

	stored := database.FindUserByEmail("alice@example.com")
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestCreateUserDuplicateEmailFails(t *testing.T) {
	newTestDB(t)
	mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	hash, ok := database.HashPassword("Other1!pass")
	require.True(t, ok)
	// the unique index is authoritative even when the pre-check is skipped
	assert.Nil(t, database.CreateUser("Alice Clone", "ALICE@example.com", hash))
}

func TestEmailTaken(t *testing.T) {
	newTestDB(t)
	mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	assert.True(t, database.EmailTaken("alice@example.com"))
	assert.True(t, database.EmailTaken("ALICE@EXAMPLE.com"))
	assert.False(t, database.EmailTaken("bob@example.com"))
}

func TestEmailTakenByOther(t *testing.T) {
	newTestDB(t)
	alice := mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")
	mustCreateUser(t, "Bob Example", "bob@example.com", "Secret1!pass")

	assert.False(t, database.EmailTakenByOther("alice@example.com", alice.ID))
	assert.True(t, database.EmailTakenByOther("BOB@example.com", alice.ID))
	assert.False(t, database.EmailTakenByOther("carol@example.com", alice.ID))
}

func TestListUsersNewestFirst(t *testing.T) {
	newTestDB(t)
	mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")
	bob := mustCreateUser(t, "Bob Example", "bob@example.com", "Secret1!pass")

	users := database.ListUsers()
	// seeded admin plus the two created here
	require.Len(t, users, 3)
	assert.Equal(t, bob.ID, users[0].ID)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
		assert.NotEmpty(t, u.Role.RoleName)
	}
}

func TestGetUserByID(t *testing.T) {
	newTestDB(t)
	alice := mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	got := database.GetUserByID(alice.ID)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Example", got.Name)
	assert.Equal(t, models.RoleUser, got.Role.RoleName)

	assert.Nil(t, database.GetUserByID(99999))
}

func TestUpdateUser(t *testing.T) {
	newTestDB(t)
	alice := mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	updated := database.UpdateUser(alice.ID, "Alicia Example", "Alicia@Example.com")
	require.NotNil(t, updated)
	assert.Equal(t, "Alicia Example", updated.Name)
	assert.Equal(t, "alicia@example.com", updated.Email)

	stored := database.GetUserByID(alice.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Alicia Example", stored.Name)
	assert.Equal(t, "alicia@example.com", stored.Email)

	assert.Nil(t, database.UpdateUser(99999, "Nobody Anywhere", "no@example.com"))
}

func TestDeleteUserIdempotent(t *testing.T) {
	newTestDB(t)
	alice := mustCreateUser(t, "Alice Example", "alice@example.com", "Secret1!pass")

	assert.True(t, database.DeleteUser(alice.ID))
	assert.Nil(t, database.GetUserByID(alice.ID))

	// deleting again reports failure, it never blows up
	assert.False(t, database.DeleteUser(alice.ID))
}
