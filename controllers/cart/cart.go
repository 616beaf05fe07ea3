package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	userControllers "github.com/shoplite/ecommerce-api/controllers/user"
	"github.com/shoplite/ecommerce-api/services"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// POST /carts?userId=
func AddToCart(users *services.UserService, catalog *services.CatalogService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userControllers.ResolveUser(c, users)
		if !ok {
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.GetProductByID(c.Request.Context(), input.ProductID)
		if err != nil {
			c.Error(err)
			return
		}

		item, err := carts.AddToCart(c.Request.Context(), product, input.Quantity, user)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /carts?userId=
func GetCartItems(users *services.UserService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userControllers.ResolveUser(c, users)
		if !ok {
			return
		}

		summary, err := carts.ListCartItems(c.Request.Context(), user)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// PUT /carts/:id?userId=
func UpdateCartItem(users *services.UserService, catalog *services.CatalogService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := userControllers.ResolveUser(c, users); !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if _, err := catalog.GetProductByID(c.Request.Context(), input.ProductID); err != nil {
			c.Error(err)
			return
		}

		item, err := carts.UpdateCartItem(c.Request.Context(), uint(itemID), input.Quantity)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /carts/:id?userId=
func DeleteCartItem(users *services.UserService, carts *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userControllers.ResolveUser(c, users)
		if !ok {
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item id"})
			return
		}

		if err := carts.DeleteCartItem(c.Request.Context(), uint(itemID), user.ID); err != nil {
			c.Error(err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
