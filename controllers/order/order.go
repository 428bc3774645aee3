package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetMyOrders is a stub: order history is out of scope for this
// storefront, so the endpoint always returns an empty list.
// GET /api/orders/myorders
func GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, []any{})
	}
}
