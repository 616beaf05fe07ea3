// Package storage is the persistence gateway. Consumers depend on the
// Store interface; the GORM implementation lives in gorm.go.
package storage

import (
	"context"

	"github.com/shoplite/ecommerce-api/models"
)

type Store interface {
	// Users
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	// Categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	FindCategoryByID(ctx context.Context, id uint) (*models.Category, error)
	FindCategoryByName(ctx context.Context, name string) (*models.Category, error)
	SaveCategory(ctx context.Context, category *models.Category) error

	// Products
	ListProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, id uint) (*models.Product, error)
	SaveProduct(ctx context.Context, product *models.Product) error

	// Cart lines
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	FindCartItemByID(ctx context.Context, id uint) (*models.CartItem, error)
	SaveCartItem(ctx context.Context, item *models.CartItem) error
	DeleteCartItem(ctx context.Context, id uint) error
	ListCartItemsByUser(ctx context.Context, userID uint) ([]models.CartItem, error)
	DeleteCartItemsByUser(ctx context.Context, userID uint) error

	// Orders
	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error
	ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error)
	FindOrderByIDOrRef(ctx context.Context, idOrRef string) (*models.Order, error)

	// Transaction runs fn against a Store bound to a single database
	// transaction. If fn returns an error every write inside it rolls back.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
