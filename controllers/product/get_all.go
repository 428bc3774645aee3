package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

// GET /api/products?category=
func GetProducts(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Query("category")
		if category != "" && category != "all" && !models.IsValidCategory(category) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
			return
		}

		result, err := products.List(category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if result == nil {
			result = []models.Product{}
		}

		c.JSON(http.StatusOK, result)
	}
}
