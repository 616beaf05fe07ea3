package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/shoplite/ecommerce-api/controllers/cart"
)

func setupCartRoutes(r *gin.Engine, d Deps) {
	carts := r.Group("/carts")
	{
		carts.POST("", cartControllers.AddToCart(d.Users, d.Catalog, d.Carts))
		carts.GET("", cartControllers.GetCartItems(d.Users, d.Carts))
		carts.PUT("/:id", cartControllers.UpdateCartItem(d.Users, d.Catalog, d.Carts))
		carts.DELETE("/:id", cartControllers.DeleteCartItem(d.Users, d.Carts))
	}
}
