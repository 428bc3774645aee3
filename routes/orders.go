package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/abishek204/dress-shop/controllers/order"
	"github.com/abishek204/dress-shop/middleware"
)

// SetupOrderRoutes registers the order-history stub.
func SetupOrderRoutes(api *gin.RouterGroup, demoMode bool) {
	orders := api.Group("/orders")
	orders.Use(middleware.Authenticate(demoMode))
	{
		orders.GET("/myorders", orderControllers.GetMyOrders())
	}
}
