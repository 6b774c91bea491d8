package services

import (
	"context"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

type ReviewService struct {
	client *api.Client
}

func NewReviewService(client *api.Client) *ReviewService {
	return &ReviewService{client: client}
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.client.Get(ctx, "/api/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) ByProduct(ctx context.Context, productID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := s.client.Get(ctx, fmt.Sprintf("/api/reviews/product/%d", productID), &reviews)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) ByUser(ctx context.Context, userID int64) ([]models.Review, error) {
	var reviews []models.Review
	err := s.client.Get(ctx, fmt.Sprintf("/api/reviews/user/%d", userID), &reviews)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, userID, productID int64, input models.ReviewInput) (models.Review, error) {
	var review models.Review
	err := s.client.Post(ctx, fmt.Sprintf("/api/reviews/%d/%d", userID, productID), input, &review)
	return review, err
}

func (s *ReviewService) Delete(ctx context.Context, reviewID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/reviews/%d", reviewID))
}
