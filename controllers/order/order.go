package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userControllers "github.com/shoplite/ecommerce-api/controllers/user"
	"github.com/shoplite/ecommerce-api/services"
)

// POST /orders?userId=
func PlaceOrder(users *services.UserService, orders *services.OrderService, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userControllers.ResolveUser(c, users)
		if !ok {
			return
		}

		order, err := orders.PlaceOrder(c.Request.Context(), user)
		if err != nil {
			c.Error(err)
			return
		}

		hub.Broadcast(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders?userId=
func GetAllOrders(users *services.UserService, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := userControllers.ResolveUser(c, users)
		if !ok {
			return
		}

		list, err := orders.ListOrders(c.Request.Context(), user)
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /orders/:id?userId=
func GetOrder(users *services.UserService, orders *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := userControllers.ResolveUser(c, users); !ok {
			return
		}

		order, err := orders.GetOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
