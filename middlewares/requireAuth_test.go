package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func guardedServer(sess *session.Session) *gin.Engine {
	server := gin.New()
	ok := func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"message": "ok"}) }
	server.GET("/private", middlewares.RequireAuth(sess), ok)
	server.GET("/admin", middlewares.RequireAdmin(sess), ok)
	return server
}

func get(server *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	sess := session.New(session.NewFileTokenStore(t.TempDir()), nil, nil, zap.NewNop())
	server := guardedServer(sess)

	rec := get(server, "/private")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in required")
}

func TestRequireAdmin(t *testing.T) {
	sess := session.New(session.NewFileTokenStore(t.TempDir()), nil, nil, zap.NewNop())
	server := guardedServer(sess)

	rec := get(server, "/admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code, "signed out is 401, not 403")
}

func TestRequestID(t *testing.T) {
	server := gin.New()
	server.Use(middlewares.RequestID())
	server.GET("/", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	t.Run("mints an id when missing", func(t *testing.T) {
		rec := get(server, "/")
		assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
	})
}
