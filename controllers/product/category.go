package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplite/ecommerce-api/apperr"
	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/services"
)

type CategoryInput struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	Products    []models.Product `json:"products"`
}

// GET /categories
func GetCategories(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		if len(categories) == 0 {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// GET /categories/:id
func GetCategoryByID(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}
		category, err := catalog.FindCategoryByID(c.Request.Context(), uint(id))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// POST /categories
//
// The duplicate-name check happens here; the service saves
// unconditionally. Names match case-sensitively.
func CreateCategory(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		existing, err := catalog.FindCategoryByName(c.Request.Context(), input.Name)
		if err != nil && !apperr.IsNotFound(err) {
			c.Error(err)
			return
		}
		if existing != nil {
			c.Error(apperr.Duplicatef("category already exists: %s", input.Name))
			return
		}

		category := &models.Category{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Products:    input.Products,
		}
		if err := catalog.CreateCategory(c.Request.Context(), category); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// PUT /categories/:id
func UpdateCategory(catalog *services.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
			return
		}

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := catalog.UpdateCategory(c.Request.Context(), uint(id), &models.Category{
			Name:        input.Name,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Products:    input.Products,
		})
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
