package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/abishek204/dress-shop/auth"
	"github.com/abishek204/dress-shop/middleware"
	"github.com/abishek204/dress-shop/models"
	"github.com/abishek204/dress-shop/store"
)

func identityRouter(demoMode bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", middleware.Authenticate(demoMode), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateAcceptsIssuedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(false)

	token, err := auth.IssueToken("u1", models.RoleAdmin)
	require.NoError(t, err)

	w := get(r, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":"u1"`)
	require.Contains(t, w.Body.String(), `"role":"admin"`)
}

func TestAuthenticateRejectsMissingOrGarbageToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(false)

	require.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	require.Equal(t, http.StatusUnauthorized, get(r, "not-a-jwt").Code)
}

func TestDemoModeFallsBackToDemoIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := identityRouter(true)

	w := get(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), store.DemoUserID)

	// A valid token still wins over the demo identity.
	token, err := auth.IssueToken("u1", models.RoleUser)
	require.NoError(t, err)
	require.Contains(t, get(r, token).Body.String(), `"user_id":"u1"`)
}
