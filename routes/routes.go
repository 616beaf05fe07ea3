package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shoplite/ecommerce-api/controllers/order"
	"github.com/shoplite/ecommerce-api/services"
)

// Deps carries every dependency the route handlers need.
type Deps struct {
	Users    *services.UserService
	Catalog  *services.CatalogService
	Carts    *services.CartService
	Orders   *services.OrderService
	OrderHub *orderControllers.Hub
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, d Deps) {
	setupUserRoutes(r, d)
	setupCatalogRoutes(r, d)
	setupCartRoutes(r, d)
	setupOrderRoutes(r, d)
}
