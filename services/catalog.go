package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/storage"
)

// ProductInput carries the writable product fields. The owning category
// is resolved separately and passed alongside on create/update.
type ProductInput struct {
	Name        string
	Description string
	ImageURL    string
	Price       decimal.Decimal
}

type CatalogService struct {
	store  storage.Store
	logger *zap.Logger
}

func NewCatalogService(store storage.Store, logger *zap.Logger) *CatalogService {
	return &CatalogService{store: store, logger: logger}
}

// ---------- Categories ----------

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CatalogService) FindCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	return s.store.FindCategoryByID(ctx, id)
}

func (s *CatalogService) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.store.FindCategoryByName(ctx, name)
}

// CreateCategory saves unconditionally; the caller is responsible for the
// duplicate-name check.
func (s *CatalogService) CreateCategory(ctx context.Context, category *models.Category) error {
	if err := s.store.SaveCategory(ctx, category); err != nil {
		return err
	}
	s.logger.Info("category created", zap.Uint("id", category.ID), zap.String("name", category.Name))
	return nil
}

// UpdateCategory overwrites name, description, image and the owned
// product list. Returns NotFound if the id does not exist.
func (s *CatalogService) UpdateCategory(ctx context.Context, id uint, newCategory *models.Category) (*models.Category, error) {
	category, err := s.store.FindCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	category.Name = newCategory.Name
	category.Description = newCategory.Description
	category.ImageURL = newCategory.ImageURL
	category.Products = newCategory.Products
	if err := s.store.SaveCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ---------- Products ----------

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *CatalogService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	return s.store.FindProductByID(ctx, id)
}

func (s *CatalogService) AddProduct(ctx context.Context, input ProductInput, category *models.Category) (*models.Product, error) {
	product := productFromInput(input, category)
	if err := s.store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.Uint("id", product.ID), zap.String("name", product.Name))
	return product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint, input ProductInput, category *models.Category) (*models.Product, error) {
	product, err := s.store.FindProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.Description = input.Description
	product.ImageURL = input.ImageURL
	product.Price = input.Price
	product.CategoryID = category.ID
	if err := s.store.SaveProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func productFromInput(input ProductInput, category *models.Category) *models.Product {
	return &models.Product{
		Name:        input.Name,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Price:       input.Price,
		CategoryID:  category.ID,
	}
}
