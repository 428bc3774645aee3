package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/abishek204/dress-shop/controllers/product"
	"github.com/abishek204/dress-shop/middleware"
)

// SetupProductRoutes registers catalog browsing (public) and product
// management (admin role) endpoints.
func SetupProductRoutes(api *gin.RouterGroup, s Stores, demoMode bool) {
	products := api.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(s.Products))

		admin := products.Group("")
		admin.Use(middleware.Authenticate(demoMode), middleware.RequireAdmin)
		{
			admin.POST("", productcontroller.CreateProduct(s.Products))
			admin.PUT("/:id", productcontroller.UpdateProduct(s.Products))
			admin.DELETE("/:id", productcontroller.DeleteProduct(s.Products))
			admin.GET("/export-excel", productcontroller.ExportProductsToExcel(s.Products))
			admin.POST("/import-excel", productcontroller.ImportProductsFromExcel(s.Products))
		}

		// Registered after the fixed paths so "export-excel" is not
		// swallowed by the ID parameter.
		products.GET("/:id", productcontroller.GetProductByID(s.Products))
	}
}
