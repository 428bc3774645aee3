package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

type AddCartItemInput struct {
	ProductID uint    `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Image     string  `json:"image"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Size      string  `json:"size" binding:"required"`
}

// GET /api/cart
func GetCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := carts.Get(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// POST /api/cart
func AddCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item := models.CartItem{
			ProductID: input.ProductID,
			Name:      input.Name,
			Image:     input.Image,
			Price:     input.Price,
			Quantity:  input.Quantity,
			Size:      input.Size,
		}

		cart, created, err := carts.AddItem(userID, item)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		c.JSON(status, cart)
	}
}

// DELETE /api/cart/:itemId
func RemoveCartItem(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
			return
		}

		cart, err := carts.RemoveItem(userID, uint(itemID))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, cart)
	}
}

// DELETE /api/cart
func ClearCart(carts store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := carts.Clear(userID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
