package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// testShop is a fake upstream with one account: alice/secret, user id 1.
type testShop struct {
	mux       *http.ServeMux
	role      string
	failUsers atomic.Bool
	always401 atomic.Bool
	requests  atomic.Int64
}

func newTestShop(t *testing.T, role string) *testShop {
	shop := &testShop{mux: http.NewServeMux(), role: role}

	shop.mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		token := signToken(t, jwt.MapClaims{"sub": "alice", "userId": float64(1), "role": role})
		w.Write([]byte(`{"token": "` + token + `"}`))
	})
	shop.mux.HandleFunc("GET /api/users/1", func(w http.ResponseWriter, r *http.Request) {
		if shop.failUsers.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": 1, "username": "alice", "email": "alice@example.com", "role": "` + role + `"}`))
	})
	shop.mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		if shop.failUsers.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[{"id": 1, "username": "alice", "role": "` + role + `"}]`))
	})
	shop.mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	return shop
}

func (s *testShop) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.requests.Add(1)
	if s.always401.Load() {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	s.mux.ServeHTTP(w, r)
}

type fixture struct {
	sess     *session.Session
	orders   *services.OrderService
	shop     *testShop
	tokenDir string
}

// newFixture wires client and session the way main does: the client reads
// the session token and reports 401s back into the session.
func newFixture(t *testing.T, role string) *fixture {
	t.Helper()
	shop := newTestShop(t, role)
	srv := httptest.NewServer(shop)
	t.Cleanup(srv.Close)

	var sess *session.Session
	client := api.New(srv.URL, 5*time.Second, zap.NewNop(),
		api.WithTokenProvider(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		}),
		api.OnUnauthorized(func() {
			if sess != nil {
				sess.Invalidate()
			}
		}))

	dir := t.TempDir()
	sess = session.New(
		session.NewFileTokenStore(dir),
		services.NewAuthService(client),
		services.NewUserService(client),
		zap.NewNop(),
	)
	return &fixture{
		sess:     sess,
		orders:   services.NewOrderService(client),
		shop:     shop,
		tokenDir: dir,
	}
}

func (f *fixture) tokenOnDisk() string {
	data, err := os.ReadFile(filepath.Join(f.tokenDir, "token"))
	if err != nil {
		return ""
	}
	return string(data)
}

func TestSignedOutSession(t *testing.T) {
	f := newFixture(t, "USER")

	assert.False(t, f.sess.IsAuthenticated())
	assert.False(t, f.sess.IsAdmin(), "no user loaded means not admin")
	assert.Empty(t, f.sess.Token())
	_, ok := f.sess.User()
	assert.False(t, ok)
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials populate the user", func(t *testing.T) {
		f := newFixture(t, "USER")

		user, err := f.sess.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)

		assert.Equal(t, "alice", user.Username)
		assert.True(t, f.sess.IsAuthenticated())
		assert.NotEmpty(t, f.sess.Token())
		assert.Equal(t, f.sess.Token(), f.tokenOnDisk(), "token must be persisted")
	})

	t.Run("profile fetch failure tears the session down", func(t *testing.T) {
		f := newFixture(t, "USER")
		f.shop.failUsers.Store(true)

		_, err := f.sess.Login(context.Background(), "alice", "secret")
		require.Error(t, err)

		assert.False(t, f.sess.IsAuthenticated())
		assert.Empty(t, f.sess.Token(), "no partial state: token cleared with user")
		assert.Empty(t, f.tokenOnDisk())
	})
}

func TestIsAdmin(t *testing.T) {
	t.Run("matches role case-insensitively", func(t *testing.T) {
		for _, role := range []string{"admin", "ADMIN", "Admin"} {
			f := newFixture(t, role)
			_, err := f.sess.Login(context.Background(), "alice", "secret")
			require.NoError(t, err)
			assert.True(t, f.sess.IsAdmin(), role)
		}
	})

	t.Run("plain user is not admin", func(t *testing.T) {
		f := newFixture(t, "USER")
		_, err := f.sess.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.False(t, f.sess.IsAdmin())
	})
}

func TestInit(t *testing.T) {
	t.Run("restores a persisted token", func(t *testing.T) {
		f := newFixture(t, "USER")
		token := signToken(t, jwt.MapClaims{"sub": "alice", "userId": float64(1), "role": "USER"})
		store := session.NewFileTokenStore(f.tokenDir)
		require.NoError(t, store.Save(token))

		f.sess.Init(context.Background())

		assert.True(t, f.sess.IsAuthenticated())
		user, ok := f.sess.User()
		require.True(t, ok)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("discards a token that is not a JWT", func(t *testing.T) {
		f := newFixture(t, "USER")
		store := session.NewFileTokenStore(f.tokenDir)
		require.NoError(t, store.Save("not-a-jwt"))

		f.sess.Init(context.Background())

		assert.False(t, f.sess.IsAuthenticated())
		assert.Empty(t, f.tokenOnDisk())
	})

	t.Run("no token means logged out, no network traffic", func(t *testing.T) {
		f := newFixture(t, "USER")
		f.sess.Init(context.Background())
		assert.False(t, f.sess.IsAuthenticated())
		assert.Zero(t, f.shop.requests.Load())
	})
}

func TestLogout(t *testing.T) {
	f := newFixture(t, "USER")
	_, err := f.sess.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	f.sess.Logout()

	assert.False(t, f.sess.IsAuthenticated())
	assert.Empty(t, f.sess.Token())
	assert.Empty(t, f.tokenOnDisk())
}

func TestUnauthorizedTeardown(t *testing.T) {
	t.Run("a 401 clears the session exactly once", func(t *testing.T) {
		f := newFixture(t, "USER")
		_, err := f.sess.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)

		f.shop.always401.Store(true)
		before := f.shop.requests.Load()

		_, err = f.orders.List(context.Background())
		require.Error(t, err)

		assert.False(t, f.sess.IsAuthenticated())
		assert.Empty(t, f.sess.Token())
		assert.Empty(t, f.tokenOnDisk())
		assert.Equal(t, before+1, f.shop.requests.Load(), "no retry loop after a 401")

		// Further 401s while signed out stay no-ops.
		f.sess.Invalidate()
		assert.False(t, f.sess.IsAuthenticated())
	})
}
