package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

type CreateProductInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	Category     string   `json:"category" binding:"required,oneof=casual formal party traditional summer wedding"`
	Images       []string `json:"images" binding:"required,min=1"`
	Sizes        []string `json:"sizes"`
	Colors       []string `json:"colors"`
	CountInStock int      `json:"countInStock" binding:"min=0"`
}

// CreateProduct adds a product to the catalog. Admin only.
// POST /api/products
func CreateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:         input.Name,
			Description:  input.Description,
			Price:        input.Price,
			Category:     input.Category,
			Images:       input.Images,
			Sizes:        input.Sizes,
			Colors:       input.Colors,
			CountInStock: input.CountInStock,
		}

		if err := products.Create(&product); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "A product with this name already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
