package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abishek204/dress-shop/models"
)

func TestUserStoreUniqueEmail(t *testing.T) {
	users := NewMemoryUserStore()

	u := models.User{ID: "u1", Name: "Meera", Email: "meera@example.com", Role: models.RoleUser}
	require.NoError(t, users.Create(&u))

	dup := models.User{ID: "u2", Name: "Meera Again", Email: "meera@example.com", Role: models.RoleUser}
	require.ErrorIs(t, users.Create(&dup), ErrConflict)

	found, err := users.FindByEmail("meera@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", found.ID)
}

func TestUserStoreFindMissing(t *testing.T) {
	users := NewMemoryUserStore()

	_, err := users.FindByEmail("ghost@example.com")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSeedDemoAccounts(t *testing.T) {
	users := NewMemoryUserStore()
	SeedDemoAccounts(users)

	admin, err := users.FindByEmail("admin@demo.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)

	password := models.Password{Hash: admin.PasswordHash}
	match, err := password.Matches("admin123")
	require.NoError(t, err)
	require.True(t, match)

	shopper, err := users.FindByEmail("user@demo.com")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, shopper.Role)
}
