package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/abishek204/dress-shop/controllers/cart"
	"github.com/abishek204/dress-shop/middleware"
)

// SetupCartRoutes registers the authenticated shopping-cart endpoints.
func SetupCartRoutes(api *gin.RouterGroup, s Stores, demoMode bool) {
	cart := api.Group("/cart")
	cart.Use(middleware.Authenticate(demoMode))
	{
		cart.GET("", cartControllers.GetCart(s.Carts))
		cart.POST("", cartControllers.AddCartItem(s.Carts))
		cart.DELETE("/:itemId", cartControllers.RemoveCartItem(s.Carts))
		cart.DELETE("", cartControllers.ClearCart(s.Carts))
	}
}
