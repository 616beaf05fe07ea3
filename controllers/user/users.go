package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shoplite/ecommerce-api/models"
	"github.com/shoplite/ecommerce-api/services"
)

type UserInput struct {
	Email   string         `json:"email" binding:"required,email"`
	Name    string         `json:"name" binding:"required"`
	Phone   string         `json:"phone"`
	Address models.Address `json:"address"`
}

// ResolveUser loads the user named by the userId query parameter. It
// writes the failure response itself and reports ok=false; cart and order
// handlers call it before touching the user's data.
func ResolveUser(c *gin.Context, users *services.UserService) (*models.User, bool) {
	userID, err := strconv.ParseUint(c.Query("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId query parameter is required"})
		return nil, false
	}
	user, err := users.FindByID(c.Request.Context(), uint(userID))
	if err != nil {
		c.Error(err)
		return nil, false
	}
	return user, true
}

// GET /users
func GetUsers(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListUsers(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		if len(list) == 0 {
			c.Status(http.StatusNoContent)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// GET /users/:id
func GetUserByID(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
			return
		}
		user, err := users.FindByID(c.Request.Context(), uint(id))
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// POST /users
func CreateUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user := &models.User{
			Email:   input.Email,
			Name:    input.Name,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := users.CreateUser(c.Request.Context(), user); err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}
