package services

import (
	"context"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

type CategoryService struct {
	client *api.Client
}

func NewCategoryService(client *api.Client) *CategoryService {
	return &CategoryService{client: client}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.client.Get(ctx, "/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, categoryID int64) (models.Category, error) {
	var category models.Category
	err := s.client.Get(ctx, fmt.Sprintf("/api/categories/%d", categoryID), &category)
	return category, err
}
