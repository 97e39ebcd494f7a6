package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/zninennea/nani-plate-perfect/entity"
	"github.com/zninennea/nani-plate-perfect/utils"
)

const testSecret = "test-secret"

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/customer-only", AuthMiddleware(testSecret, entity.RoleCustomer),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	r.POST("/auth/login", PublicOnlyMiddleware(testSecret),
		func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func redirectOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Redirect
}

func TestMissingTokenRedirectsToAuth(t *testing.T) {
	w := do(t, newRouter(), http.MethodGet, "/customer-only", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, AuthPath, redirectOf(t, w))
}

func TestRoleMismatchRedirectsToOwnDashboard(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleDriver, testSecret, time.Hour)
	require.NoError(t, err)

	w := do(t, newRouter(), http.MethodGet, "/customer-only", token)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, DriverHome, redirectOf(t, w))
}

func TestMatchingRolePasses(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleCustomer, testSecret, time.Hour)
	require.NoError(t, err)

	w := do(t, newRouter(), http.MethodGet, "/customer-only", token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPublicOnlyRedirectsAuthenticatedCallers(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleOwner, testSecret, time.Hour)
	require.NoError(t, err)

	w := do(t, newRouter(), http.MethodPost, "/auth/login", token)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, OwnerHome, redirectOf(t, w))

	// anonymous callers reach the form
	w = do(t, newRouter(), http.MethodPost, "/auth/login", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken(42, entity.RoleCustomer, testSecret, -time.Minute)
	require.NoError(t, err)

	w := do(t, newRouter(), http.MethodGet, "/customer-only", token)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
