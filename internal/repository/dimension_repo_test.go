package repository

import (
	"fmt"
	"testing"

	"supplier-ledger-backend/internal/ledger"
	"supplier-ledger-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
		&models.Department{},
		&models.Invoice{},
	))
	return db
}

func TestResolveSupplierIdempotent(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	first, created, err := repo.ResolveSupplier("Acme")
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.ResolveSupplier("Acme")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)

	var count int64
	repo.db.Model(&models.Supplier{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestResolveSupplierTrimsName(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	first, _, err := repo.ResolveSupplier("  Acme  ")
	require.NoError(t, err)

	second, created, err := repo.ResolveSupplier("Acme")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first, second)
}

func TestResolveSupplierEmptyName(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	_, _, err := repo.ResolveSupplier("   ")
	assert.ErrorIs(t, err, ledger.ErrEmptyName)
}

func TestResolveSupplierCaseSensitive(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	first, _, err := repo.ResolveSupplier("Acme")
	require.NoError(t, err)
	second, created, err := repo.ResolveSupplier("ACME")
	require.NoError(t, err)

	assert.True(t, created)
	assert.NotEqual(t, first, second)
}

func TestResolveProductScopedToSupplier(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	acme, _, err := repo.ResolveSupplier("Acme")
	require.NoError(t, err)
	globex, _, err := repo.ResolveSupplier("Globex")
	require.NoError(t, err)

	widgetAcme, created, err := repo.ResolveProduct(acme, "Widget")
	require.NoError(t, err)
	assert.True(t, created)

	widgetGlobex, created, err := repo.ResolveProduct(globex, "Widget")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, widgetAcme, widgetGlobex)

	again, created, err := repo.ResolveProduct(acme, "Widget")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, widgetAcme, again)

	var count int64
	repo.db.Model(&models.Product{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestResolveDepartment(t *testing.T) {
	repo := NewDimensionRepository(newTestDB(t))

	id, created, err := repo.ResolveDepartment("Accounting")
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, uuid.Nil, id)

	again, created, err := repo.ResolveDepartment("Accounting")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, id, again)
}
