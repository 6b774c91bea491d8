package services

import (
	"context"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

type UserService struct {
	client *api.Client
}

func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.client.Get(ctx, "/api/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	err := s.client.Get(ctx, fmt.Sprintf("/api/users/%d", userID), &user)
	return user, err
}

func (s *UserService) Create(ctx context.Context, input models.RegisterInput) (models.User, error) {
	var user models.User
	err := s.client.Post(ctx, "/api/users", input, &user)
	return user, err
}

func (s *UserService) Update(ctx context.Context, userID int64, user models.User) (models.User, error) {
	var updated models.User
	err := s.client.Put(ctx, fmt.Sprintf("/api/users/%d", userID), user, &updated)
	return updated, err
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/users/%d", userID))
}
