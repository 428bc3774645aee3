package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/abishek204/dress-shop/controllers/user"
)

// SetupUserRoutes registers registration and login.
func SetupUserRoutes(api *gin.RouterGroup, s Stores) {
	users := api.Group("/users")
	{
		users.POST("", userControllers.Register(s.Users))
		users.POST("/login", userControllers.Login(s.Users))
	}
}
