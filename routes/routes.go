package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/abishek204/dress-shop/store"
)

// Stores bundles the injected store implementations so every route
// group works identically in persistent and demo mode.
type Stores struct {
	Products store.ProductStore
	Carts    store.CartStore
	Users    store.UserStore
}

// SetupRoutes is the single entry-point that wires up the /api route
// groups.
func SetupRoutes(r *gin.Engine, s Stores, demoMode bool) {
	api := r.Group("/api")

	SetupUserRoutes(api, s)
	SetupProductRoutes(api, s, demoMode)
	SetupCartRoutes(api, s, demoMode)
	SetupOrderRoutes(api, demoMode)
}
