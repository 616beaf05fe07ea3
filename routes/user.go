package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/shoplite/ecommerce-api/controllers/user"
)

func setupUserRoutes(r *gin.Engine, d Deps) {
	users := r.Group("/users")
	{
		users.GET("", userControllers.GetUsers(d.Users))
		users.GET("/:id", userControllers.GetUserByID(d.Users))
		users.POST("", userControllers.CreateUser(d.Users))
	}
}
