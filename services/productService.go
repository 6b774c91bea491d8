package services

import (
	"context"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

type ProductService struct {
	client *api.Client
}

func NewProductService(client *api.Client) *ProductService {
	return &ProductService{client: client}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.client.Get(ctx, "/api/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, productID int64) (models.Product, error) {
	var product models.Product
	err := s.client.Get(ctx, fmt.Sprintf("/api/products/%d", productID), &product)
	return product, err
}

func (s *ProductService) ByCategory(ctx context.Context, categoryID int64) ([]models.Product, error) {
	var products []models.Product
	err := s.client.Get(ctx, fmt.Sprintf("/api/products/category/%d", categoryID), &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := s.client.Post(ctx, "/api/products", input, &product)
	return product, err
}

func (s *ProductService) Update(ctx context.Context, productID int64, input models.ProductInput) (models.Product, error) {
	var product models.Product
	err := s.client.Put(ctx, fmt.Sprintf("/api/products/%d", productID), input, &product)
	return product, err
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/products/%d", productID))
}
