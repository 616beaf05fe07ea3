package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/shoplite/ecommerce-api/apperr"
	"github.com/shoplite/ecommerce-api/services"
)

type ProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	ImageURL    string          `json:"image_url"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uint            `json:"category_id" binding:"required"`
}

// GET /products
func GetProducts(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListProducts(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		if len(products) == 0 {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}
		product, err := catalog.GetProductByID(c.Request.Context(), uint(id))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// POST /products
func AddProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, ok := bindProduct(c)
		if !ok {
			return
		}

		category, err := catalog.FindCategoryByID(c.Request.Context(), input.CategoryID)
		if err != nil {
			c.Error(err)
			return
		}

		product, err := catalog.AddProduct(c.Request.Context(), services.ProductInput{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Price:       input.Price,
		}, category)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /products/:id
func UpdateProduct(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
			return
		}

		input, ok := bindProduct(c)
		if !ok {
			return
		}

		category, err := catalog.FindCategoryByID(c.Request.Context(), input.CategoryID)
		if err != nil {
			c.Error(err)
			return
		}

		product, err := catalog.UpdateProduct(c.Request.Context(), uint(id), services.ProductInput{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Price:       input.Price,
		}, category)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func bindProduct(c *gin.Context) (ProductInput, bool) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return input, false
	}
	if input.Price.IsNegative() {
		c.Error(apperr.Validationf("product price must not be negative"))
		return input, false
	}
	return input, true
}
