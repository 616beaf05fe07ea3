package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/shoplite/ecommerce-api/controllers/order"
)

func setupOrderRoutes(r *gin.Engine, d Deps) {
	orders := r.Group("/orders")
	{
		orders.POST("", orderControllers.PlaceOrder(d.Users, d.Orders, d.OrderHub))
		orders.GET("", orderControllers.GetAllOrders(d.Users, d.Orders))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", d.OrderHub.Handler)

		orders.GET("/:id", orderControllers.GetOrder(d.Users, d.Orders))
	}
}
