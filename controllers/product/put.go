package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

// Pointer fields so absent keys leave the stored value untouched.
type UpdateProductInput struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price" binding:"omitempty,gt=0"`
	Category     *string   `json:"category" binding:"omitempty,oneof=casual formal party traditional summer wedding"`
	Images       *[]string `json:"images"`
	Sizes        *[]string `json:"sizes"`
	Colors       *[]string `json:"colors"`
	CountInStock *int      `json:"countInStock" binding:"omitempty,min=0"`
}

// UpdateProduct updates an existing product by ID. Admin only.
// PUT /api/products/:id
func UpdateProduct(products store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		product, err := products.Get(uint(id))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}

		var input UpdateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		applyProductUpdates(&product, input)

		if err := products.Update(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

func applyProductUpdates(product *models.Product, input UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Images != nil {
		product.Images = *input.Images
	}
	if input.Sizes != nil {
		product.Sizes = *input.Sizes
	}
	if input.Colors != nil {
		product.Colors = *input.Colors
	}
	if input.CountInStock != nil {
		product.CountInStock = *input.CountInStock
	}
}
