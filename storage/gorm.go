package storage

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shoplite/ecommerce-api/apperr"
	"github.com/shoplite/ecommerce-api/models"
)

type gormStore struct {
	db *gorm.DB
}

// Open connects to postgres, runs migrations and returns a Store.
func Open(dsn string) (Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return NewWithDB(db)
}

// NewWithDB wraps an existing gorm connection. Tests use this with sqlite.
func NewWithDB(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return &gormStore{db: db}, nil
}

// ---------- Users ----------

func (s *gormStore) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user with id %d not found", id)
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("user with email %s not found", email)
		}
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

// ---------- Categories ----------

func (s *gormStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Preload("Products").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *gormStore) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).Preload("Products").First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category with id %d not found", id)
		}
		return nil, err
	}
	return &category, nil
}

func (s *gormStore) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category with name %s not found", name)
		}
		return nil, err
	}
	return &category, nil
}

func (s *gormStore) SaveCategory(ctx context.Context, category *models.Category) error {
	return s.db.WithContext(ctx).Save(category).Error
}

// ---------- Products ----------

func (s *gormStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *gormStore) FindProductByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("product with id %d not found", id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *gormStore) SaveProduct(ctx context.Context, product *models.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// ---------- Cart lines ----------

func (s *gormStore) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	// The Product association is a read-side attachment; never write it.
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (s *gormStore) FindCartItemByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.WithContext(ctx).Preload("Product").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("cart item with id %d not found", id)
		}
		return nil, err
	}
	return &item, nil
}

func (s *gormStore) SaveCartItem(ctx context.Context, item *models.CartItem) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

func (s *gormStore) DeleteCartItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.CartItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperr.NotFoundf("cart item with id %d not found", id)
	}
	return nil
}

func (s *gormStore) ListCartItemsByUser(ctx context.Context, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *gormStore) DeleteCartItemsByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}

// ---------- Orders ----------

func (s *gormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(order).Error
}

func (s *gormStore) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (s *gormStore) ListOrdersByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *gormStore) FindOrderByIDOrRef(ctx context.Context, idOrRef string) (*models.Order, error) {
	// Numeric ids query the primary key; anything else is an order_ref.
	query := s.db.WithContext(ctx).Preload("Items").Preload("Items.Product")
	if id, err := strconv.ParseUint(idOrRef, 10, 64); err == nil {
		query = query.Where("id = ?", id)
	} else {
		query = query.Where("order_ref = ?", idOrRef)
	}

	var order models.Order
	if err := query.First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("order %s not found", idOrRef)
		}
		return nil, err
	}
	return &order, nil
}

// ---------- Transactions ----------

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
