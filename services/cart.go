package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

// CartSummary is the cart as seen by the client: the user's lines newest
// first, each with its product attached, plus the running total.
type CartSummary struct {
	Items     []models.CartItem `json:"cart_items"`
	TotalCost decimal.Decimal   `json:"total_cost"`
}

type CartService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewCartService(store storage.Store, logger *zap.Logger) *CartService {
	return &CartService{store: store, logger: logger}
}

// AddToCart creates a new cart line. Lines are never merged: adding the
// same product again produces a second line.
func (s *CartService) AddToCart(ctx context.Context, product *models.Product, quantity int, user *models.User) (*models.CartItem, error) {
	item := &models.CartItem{
		UserID:    user.ID,
		ProductID: product.ID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	}
	if err := s.store.CreateCartItem(ctx, item); err != nil {
		return nil, err
	}
	item.Product = *product
	s.logger.Info("cart item added",
		zap.Uint("user_id", user.ID),
		zap.Uint("product_id", product.ID),
		zap.Int("quantity", quantity))
	return item, nil
}

// ListCartItems returns the user's cart summary. totalCost is the sum of
// each line's current product price times its quantity.
func (s *CartService) ListCartItems(ctx context.Context, user *models.User) (*CartSummary, error) {
	items, err := s.store.ListCartItemsByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	totalCost := decimal.Zero
	for _, item := range items {
		subtotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		totalCost = totalCost.Add(subtotal)
	}
	return &CartSummary{Items: items, TotalCost: totalCost}, nil
}

// UpdateCartItem overwrites the line's quantity and refreshes its
// timestamp. Returns NotFound if the line does not exist.
func (s *CartService) UpdateCartItem(ctx context.Context, id uint, quantity int) (*models.CartItem, error) {
	item, err := s.store.FindCartItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Quantity = quantity
	item.CreatedAt = time.Now()
	if err := s.store.SaveCartItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteCartItem removes a single line. The userID is accepted for parity
// with the route but ownership is not verified; there is no auth layer to
// back such a check yet.
func (s *CartService) DeleteCartItem(ctx context.Context, id uint, userID uint) error {
	return s.store.DeleteCartItem(ctx, id)
}

// DeleteUserCartItems clears the user's cart. Order placement calls this
// inside its transaction.
func (s *CartService) DeleteUserCartItems(ctx context.Context, user *models.User) error {
	return s.store.DeleteCartItemsByUser(ctx, user.ID)
}
