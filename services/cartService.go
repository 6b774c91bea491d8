package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartService struct {
	client *api.Client
}

func NewCartService(client *api.Client) *CartService {
	return &CartService{client: client}
}

func (s *CartService) Items(ctx context.Context, userID int64) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.client.Get(ctx, fmt.Sprintf("/api/cart/%d", userID), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartService) Add(ctx context.Context, userID int64, item models.CartItem) (models.CartItem, error) {
	var created models.CartItem
	err := s.client.Post(ctx, fmt.Sprintf("/api/cart/%d", userID), item, &created)
	return created, err
}

func (s *CartService) Remove(ctx context.Context, userID, itemID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/cart/%d/%d", userID, itemID))
}

func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/cart/clear/%d", userID))
}

// SetQuantity changes the quantity of a cart item. The API has no update
// endpoint, so the item is removed and re-added with the new quantity.
// A quantity below 1 removes the item outright.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID int64, qty int) error {
	if qty < 1 {
		return s.Remove(ctx, userID, itemID)
	}

	items, err := s.Items(ctx, userID)
	if err != nil {
		return err
	}

	var found *models.CartItem
	for i := range items {
		if items[i].ID == itemID {
			found = &items[i]
			break
		}
	}
	if found == nil {
		return ErrCartItemNotFound
	}

	if err := s.Remove(ctx, userID, itemID); err != nil {
		return err
	}

	replacement := *found
	replacement.ID = 0
	replacement.Qty = &qty
	_, err = s.Add(ctx, userID, replacement)
	return err
}
