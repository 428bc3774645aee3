package orderControllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/abishek204/dress-shop/routes"
	"github.com/abishek204/dress-shop/store"
)

func TestMyOrdersIsAlwaysEmpty(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := routes.Stores{
		Products: store.NewMemoryProductStore(),
		Carts:    store.NewMemoryCartStore(),
		Users:    store.NewMemoryUserStore(),
	}
	r := gin.New()
	routes.SetupRoutes(r, s, true)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/myorders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}
