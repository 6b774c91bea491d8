package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
)

var ErrNotSignedIn = errors.New("not signed in")

// Session holds at most one bearer token and one loaded user for the whole
// process. Any failure while loading the user clears both, so the session is
// always either fully signed in or fully signed out.
type Session struct {
	mu    sync.Mutex
	token string
	user  *models.User

	store TokenStore
	auth  *services.AuthService
	users *services.UserService
	log   *zap.Logger
}

func New(store TokenStore, auth *services.AuthService, users *services.UserService, log *zap.Logger) *Session {
	return &Session{store: store, auth: auth, users: users, log: log}
}

// Init restores the session from the persisted token, if any. A token that
// no longer resolves to a user is discarded; the process starts logged out.
func (s *Session) Init(ctx context.Context) {
	token, err := s.store.Load()
	if err != nil {
		s.log.Warn("could not read persisted token", zap.Error(err))
		return
	}
	if token == "" {
		return
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if _, err := s.loadUser(ctx); err != nil {
		s.log.Warn("persisted token no longer valid", zap.Error(err))
	}
}

// Token returns the current bearer token, empty when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the loaded user. The second result is false when signed out.
func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// IsAdmin reports whether the loaded user's role is "admin", matched
// case-insensitively. Signed out means not admin.
func (s *Session) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && strings.EqualFold(s.user.Role, "admin")
}

// Login exchanges credentials for a token, persists it, and loads the user
// profile. A failed profile load tears the session back down.
func (s *Session) Login(ctx context.Context, username, password string) (models.User, error) {
	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if err := s.store.Save(token); err != nil {
		// The session still works for this process; only persistence is lost.
		s.log.Warn("could not persist token", zap.Error(err))
	}

	user, err := s.loadUser(ctx)
	if err != nil {
		return models.User{}, fmt.Errorf("load profile: %w", err)
	}
	return user, nil
}

// Register creates the account and signs in with the same credentials.
func (s *Session) Register(ctx context.Context, input models.RegisterInput) (models.User, error) {
	if _, err := s.users.Create(ctx, input); err != nil {
		return models.User{}, err
	}
	return s.Login(ctx, input.Username, input.PasswordHash)
}

// Logout clears the token and user, in memory and on disk.
func (s *Session) Logout() {
	s.reset()
}

// Invalidate is the 401 hook: it tears the session down once. Repeated 401s
// while already signed out do nothing, so there is no clearing loop.
func (s *Session) Invalidate() {
	s.mu.Lock()
	signedOut := s.token == "" && s.user == nil
	s.mu.Unlock()
	if signedOut {
		return
	}
	s.log.Info("session invalidated by 401 from the shop api")
	s.reset()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		s.log.Warn("could not clear persisted token", zap.Error(err))
	}
}

// loadUser resolves the current token to a user record: decode the identity
// claims, fetch the profile by id, and as a last resort scan the user list
// for a matching username. Any failure resets the session.
func (s *Session) loadUser(ctx context.Context) (models.User, error) {
	token := s.Token()
	if token == "" {
		return models.User{}, ErrNotSignedIn
	}

	claims, err := decodeClaims(token)
	if err != nil {
		s.reset()
		return models.User{}, err
	}

	user, err := s.resolveUser(ctx, claims)
	if err != nil {
		s.reset()
		return models.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

func (s *Session) resolveUser(ctx context.Context, claims tokenClaims) (models.User, error) {
	if claims.UserID != 0 {
		user, err := s.users.Get(ctx, claims.UserID)
		if err == nil {
			return user, nil
		}
		s.log.Warn("could not fetch user by id, trying by username",
			zap.Int64("userId", claims.UserID), zap.Error(err))
	}

	if claims.Username == "" {
		return models.User{}, errNoIdentity
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, user := range users {
		if user.Username == claims.Username {
			return user, nil
		}
	}
	return models.User{}, fmt.Errorf("no user named %q", claims.Username)
}
