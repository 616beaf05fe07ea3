package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:svc-%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store, err := storage.NewWithDB(db)
	require.NoError(t, err)
	return store
}

func seedUser(t *testing.T, store storage.Store, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, Name: "Test User"}
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func seedCatalog(t *testing.T, store storage.Store, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, store.SaveCategory(context.Background(), category))
	return category
}

func seedProduct(t *testing.T, store storage.Store, category *models.Category, name, price string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      decimal.RequireFromString(price),
		CategoryID: category.ID,
	}
	require.NoError(t, store.SaveProduct(context.Background(), product))
	return product
}

func nopLogger() *zap.Logger { return zap.NewNop() }
