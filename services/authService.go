package services

import (
	"context"
	"errors"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

var ErrNoToken = errors.New("login response carried no token")

type AuthService struct {
	client *api.Client
}

func NewAuthService(client *api.Client) *AuthService {
	return &AuthService{client: client}
}

// Login exchanges credentials for a bearer token. The raw password travels
// in the passwordHash field; hashing happens on the backend.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	creds := models.LoginData{Username: username, PasswordHash: password}

	var resp models.TokenResponse
	if err := s.client.Post(ctx, "/api/auth/login", creds, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}
