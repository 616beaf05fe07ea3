package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

type OrderService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewOrderService(store storage.Store, logger *zap.Logger) *OrderService {
	return &OrderService{store: store, logger: logger}
}

func (s *OrderService) ListOrders(ctx context.Context, user *models.User) ([]models.Order, error) {
	return s.store.ListOrdersByUser(ctx, user.ID)
}

func (s *OrderService) GetOrder(ctx context.Context, idOrRef string) (*models.Order, error) {
	return s.store.FindOrderByIDOrRef(ctx, idOrRef)
}

// PlaceOrder converts the user's cart into a persisted order.
//
// The whole sequence runs inside one database transaction: read the cart
// summary, create the order carrying the cart's total, snapshot each cart
// line into an order line at the product's current price, then clear the
// cart. Any failure rolls everything back, leaving no order and an intact
// cart.
func (s *OrderService) PlaceOrder(ctx context.Context, user *models.User) (*models.Order, error) {
	var placed *models.Order

	err := s.store.Transaction(ctx, func(tx storage.Store) error {
		carts := NewCartService(tx, s.logger)

		summary, err := carts.ListCartItems(ctx, user)
		if err != nil {
			return err
		}

		order := &models.Order{
			OrderRef:   newOrderRef(),
			UserID:     user.ID,
			TotalPrice: summary.TotalCost,
			CreatedAt:  time.Now(),
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		for _, line := range summary.Items {
			item := &models.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			}
			if err := tx.CreateOrderItem(ctx, item); err != nil {
				return err
			}
			order.Items = append(order.Items, *item)
		}

		if err := carts.DeleteUserCartItems(ctx, user); err != nil {
			return err
		}

		placed = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("order placed",
		zap.Uint("user_id", user.ID),
		zap.String("order_ref", placed.OrderRef),
		zap.String("total_price", placed.TotalPrice.String()),
		zap.Int("items", len(placed.Items)))
	return placed, nil
}

// newOrderRef generates a unique, human-quotable order reference.
func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
