package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/ecommerce-api/apperr"
)

func TestAddToCartCreatesSeparateLines(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "cart@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	first, err := carts.AddToCart(ctx, product, 2, user)
	require.NoError(t, err)
	second, err := carts.AddToCart(ctx, product, 3, user)
	require.NoError(t, err)

	// Same product twice means two independent lines, never a merge.
	assert.NotEqual(t, first.ID, second.ID)

	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 2)
}

func TestListCartItemsTotalCost(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "total@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	productA := seedProduct(t, store, category, "Product A", "10.00")
	productB := seedProduct(t, store, category, "Product B", "5.00")

	_, err := carts.AddToCart(ctx, productA, 2, user)
	require.NoError(t, err)
	_, err = carts.AddToCart(ctx, productB, 3, user)
	require.NoError(t, err)

	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)

	// 2 x $10 + 3 x $5 = $35
	assert.True(t, summary.TotalCost.Equal(decimal.RequireFromString("35.00")),
		"total cost was %s", summary.TotalCost)
}

func TestListCartItemsEmptyCart(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())

	user := seedUser(t, store, "empty@test.dev")

	summary, err := carts.ListCartItems(context.Background(), user)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.True(t, summary.TotalCost.IsZero())
}

func TestUpdateCartItemOverwritesQuantityAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "update@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	item, err := carts.AddToCart(ctx, product, 1, user)
	require.NoError(t, err)
	created := item.CreatedAt

	time.Sleep(10 * time.Millisecond)

	updated, err := carts.UpdateCartItem(ctx, item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)
	assert.True(t, updated.CreatedAt.After(created))
}

func TestUpdateCartItemNotFound(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())

	_, err := carts.UpdateCartItem(context.Background(), 12345, 2)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteCartItemNotFoundLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "delete@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	_, err := carts.AddToCart(ctx, product, 1, user)
	require.NoError(t, err)

	err = carts.DeleteCartItem(ctx, 99999, user.ID)
	assert.True(t, apperr.IsNotFound(err))

	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestDeleteCartItemRemovesLine(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "delete2@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	item, err := carts.AddToCart(ctx, product, 1, user)
	require.NoError(t, err)

	require.NoError(t, carts.DeleteCartItem(ctx, item.ID, user.ID))

	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}
