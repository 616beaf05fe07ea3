package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

func TestPlaceOrderConvertsCart(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	orders := NewOrderService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "place@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	productA := seedProduct(t, store, category, "Product A", "10.00")
	productB := seedProduct(t, store, category, "Product B", "5.00")

	_, err := carts.AddToCart(ctx, productA, 2, user)
	require.NoError(t, err)
	_, err = carts.AddToCart(ctx, productB, 3, user)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(ctx, user)
	require.NoError(t, err)

	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("35.00")),
		"total price was %s", order.TotalPrice)
	assert.NotEmpty(t, order.OrderRef)
	require.Len(t, order.Items, 2)

	byProduct := map[uint]models.OrderItem{}
	for _, item := range order.Items {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, 2, byProduct[productA.ID].Quantity)
	assert.True(t, byProduct[productA.ID].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, 3, byProduct[productB.ID].Quantity)
	assert.True(t, byProduct[productB.ID].Price.Equal(decimal.RequireFromString("5.00")))

	// The cart is cleared by placement.
	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestPlaceOrderCapturesPriceAtPlacement(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	orders := NewOrderService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "snapshot@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	_, err := carts.AddToCart(ctx, product, 1, user)
	require.NoError(t, err)

	order, err := orders.PlaceOrder(ctx, user)
	require.NoError(t, err)

	// Raise the product price after placement.
	product.Price = decimal.RequireFromString("99.00")
	require.NoError(t, store.SaveProduct(ctx, product))

	reloaded, err := store.FindOrderByIDOrRef(ctx, order.OrderRef)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.True(t, reloaded.Items[0].Price.Equal(decimal.RequireFromString("10.00")),
		"order line price changed to %s", reloaded.Items[0].Price)
	assert.True(t, reloaded.TotalPrice.Equal(decimal.RequireFromString("10.00")))
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	store := newTestStore(t)
	orders := NewOrderService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "emptyorder@test.dev")

	order, err := orders.PlaceOrder(ctx, user)
	require.NoError(t, err)
	assert.True(t, order.TotalPrice.IsZero())
	assert.Empty(t, order.Items)
}

func TestListOrdersAfterPlacement(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	orders := NewOrderService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "list@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	_, err := carts.AddToCart(ctx, product, 1, user)
	require.NoError(t, err)
	placed, err := orders.PlaceOrder(ctx, user)
	require.NoError(t, err)

	list, err := orders.ListOrders(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, placed.OrderRef, list[0].OrderRef)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, product.ID, list[0].Items[0].Product.ID)
}

// failingStore wraps a real store so a single write inside the placement
// transaction can be made to fail.
type failingStore struct {
	storage.Store
	err error
}

func (f *failingStore) Transaction(ctx context.Context, fn func(tx storage.Store) error) error {
	return f.Store.Transaction(ctx, func(tx storage.Store) error {
		return fn(&failingTx{Store: tx, err: f.err})
	})
}

type failingTx struct {
	storage.Store
	err error
}

func (f *failingTx) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return f.err
}

func TestPlaceOrderRollsBackOnFailure(t *testing.T) {
	store := newTestStore(t)
	carts := NewCartService(store, nopLogger())
	ctx := context.Background()

	user := seedUser(t, store, "rollback@test.dev")
	category := seedCatalog(t, store, "Gadgets")
	product := seedProduct(t, store, category, "Widget", "10.00")

	_, err := carts.AddToCart(ctx, product, 2, user)
	require.NoError(t, err)

	boom := errors.New("order line write failed")
	orders := NewOrderService(&failingStore{Store: store, err: boom}, nopLogger())

	_, err = orders.PlaceOrder(ctx, user)
	require.ErrorIs(t, err, boom)

	// No order exists and the cart is untouched.
	list, err := store.ListOrdersByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	summary, err := carts.ListCartItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}
