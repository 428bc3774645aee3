package cartControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/routes"
	"github.com/abishek204/dress-shop/store"
)

func newRouter(demoMode bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := routes.Stores{
		Products: store.NewMemoryProductStore(),
		Carts:    store.NewMemoryCartStore(),
		Users:    store.NewMemoryUserStore(),
	}
	r := gin.New()
	routes.SetupRoutes(r, s, demoMode)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) models.Cart {
	t.Helper()
	var cart models.Cart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	return cart
}

func addInput(productID uint, size string, qty int) gin.H {
	return gin.H{
		"productId": productID,
		"name":      "Party Premium Dress #1",
		"image":     "/uploads/products/party1.jpg",
		"price":     500,
		"quantity":  qty,
		"size":      size,
	}
}

func TestGetCartStartsEmpty(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeCart(t, w)
	require.Equal(t, store.DemoUserID, cart.UserID)
	require.Empty(t, cart.Items)
}

func TestAddItemMergesByProductAndSize(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 2))
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 1))
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemDifferentSizes(t *testing.T) {
	r := newRouter(true)

	doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 1))
	w := doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "L", 1))
	require.Equal(t, http.StatusOK, w.Code)

	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 2)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 0))
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart", gin.H{"productId": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveItemWithoutCartIs404(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodDelete, "/api/cart/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveMissingItemIsNoOp(t *testing.T) {
	r := newRouter(true)

	doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 1))

	w := doJSON(t, r, http.MethodDelete, "/api/cart/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeCart(t, w).Items, 1)
}

func TestRemoveItem(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 1))
	cart := decodeCart(t, w)
	require.Len(t, cart.Items, 1)

	w = doJSON(t, r, http.MethodDelete, "/api/cart/"+itoa(cart.Items[0].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, decodeCart(t, w).Items)
}

func TestClearCart(t *testing.T) {
	r := newRouter(true)

	doJSON(t, r, http.MethodPost, "/api/cart", addInput(1, "M", 1))

	w := doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Empty(t, decodeCart(t, w).Items)

	// The cart record survives a clear, so clearing twice is fine.
	w = doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestClearWithoutCartIs404(t *testing.T) {
	r := newRouter(true)

	w := doJSON(t, r, http.MethodDelete, "/api/cart", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRequiresAuthOutsideDemoMode(t *testing.T) {
	r := newRouter(false)

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
