package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, zap.NewNop(), opts...)
}

func TestBearerInjection(t *testing.T) {
	t.Run("token present", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}), WithTokenProvider(func() string { return "tok-123" }))

		require.NoError(t, client.Get(context.Background(), "/api/products", nil))
		assert.Equal(t, "Bearer tok-123", gotAuth)
	})

	t.Run("no token, no header", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{}`))
		}), WithTokenProvider(func() string { return "" }))

		require.NoError(t, client.Get(context.Background(), "/api/products", nil))
		assert.Empty(t, gotAuth)
	})
}

func TestUnauthorizedHook(t *testing.T) {
	t.Run("fires on 401 from an authenticated call", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), OnUnauthorized(func() { calls++ }))

		err := client.Get(context.Background(), "/api/cart/1", nil)
		assert.True(t, IsUnauthorized(err))
		assert.Equal(t, 1, calls)
	})

	t.Run("does not fire on failed login", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), OnUnauthorized(func() { calls++ }))

		err := client.Post(context.Background(), "/api/auth/login", map[string]string{}, nil)
		assert.True(t, IsUnauthorized(err))
		assert.Zero(t, calls)
	})

	t.Run("does not fire on failed registration", func(t *testing.T) {
		calls := 0
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}), OnUnauthorized(func() { calls++ }))

		_ = client.Post(context.Background(), "/api/users", map[string]string{}, nil)
		assert.Zero(t, calls)
	})
}

func TestErrorShapes(t *testing.T) {
	t.Run("message field", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "User not found"}`))
		}))

		err := client.Get(context.Background(), "/api/users/99", nil)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "User not found")
	})

	t.Run("bare string body", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`Invalid password`))
		}))

		err := client.Post(context.Background(), "/api/auth/login", nil, nil)
		assert.Contains(t, err.Error(), "Invalid password")
	})

	t.Run("empty body uses status text", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		err := client.Get(context.Background(), "/api/orders", nil)
		assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	})
}

func TestStatusOf(t *testing.T) {
	t.Run("transport failure maps to 502", func(t *testing.T) {
		client := New("http://127.0.0.1:0", time.Second, zap.NewNop())
		err := client.Get(context.Background(), "/api/products", nil)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, StatusOf(err))
	})

	t.Run("decodes json served as text/plain", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			w.Write([]byte(`{"token": "abc"}`))
		}))

		var out struct {
			Token string `json:"token"`
		}
		require.NoError(t, client.Post(context.Background(), "/api/auth/login", nil, &out))
		assert.Equal(t, "abc", out.Token)
	})
}
