package database

import (
	"path/filepath"
	"testing"

	"go-food-shop/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestConnectIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	require.NoError(t, Connect(path, 1))
	require.NoError(t, Close())
	require.NoError(t, Connect(path, 1)) // Tables already exist
	t.Cleanup(func() { _ = Close() })

	for _, table := range []string{"users", "cart", "orders"} {
		assert.True(t, DB.Migrator().HasTable(table), table)
	}
}

func TestSeedAdmin(t *testing.T) {
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "shop.db"), 1))
	t.Cleanup(func() { _ = Close() })

	created, err := SeedAdmin(DB, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedAdmin(DB, "admin", "other")
	require.NoError(t, err)
	assert.False(t, created) // Second run only reports the existing row

	var admin models.User
	require.NoError(t, DB.Where("username = ?", "admin").First(&admin).Error)
	assert.True(t, admin.IsAdmin())
	assert.NotEqual(t, "admin123", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("admin123")))
}

func TestForeignKeysEnforced(t *testing.T) {
	require.NoError(t, Connect(filepath.Join(t.TempDir(), "shop.db"), 1))
	t.Cleanup(func() { _ = Close() })

	orphan := models.CartItem{UserID: 999, ProductName: "Pizza", Price: 299, Quantity: 1, Total: 299}
	assert.Error(t, DB.Create(&orphan).Error)
}
