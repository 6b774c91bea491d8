package services

import (
	"context"
	"fmt"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
)

type OrderService struct {
	client *api.Client
}

func NewOrderService(client *api.Client) *OrderService {
	return &OrderService{client: client}
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := s.client.Get(ctx, "/api/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *OrderService) Get(ctx context.Context, orderID int64) (models.Order, error) {
	var order models.Order
	err := s.client.Get(ctx, fmt.Sprintf("/api/orders/%d", orderID), &order)
	return order, err
}

func (s *OrderService) ByStatus(ctx context.Context, status string) ([]models.Order, error) {
	var orders []models.Order
	err := s.client.Get(ctx, fmt.Sprintf("/api/orders/status/%s", status), &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// ByUser filters the full order list; the API has no per-user endpoint.
func (s *OrderService) ByUser(ctx context.Context, userID int64) ([]models.Order, error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.User != nil && order.User.ID == userID {
			mine = append(mine, order)
		}
	}
	return mine, nil
}

func (s *OrderService) Create(ctx context.Context, userID int64, order models.Order) (models.Order, error) {
	var created models.Order
	err := s.client.Post(ctx, fmt.Sprintf("/api/orders/%d", userID), order, &created)
	return created, err
}

func (s *OrderService) Update(ctx context.Context, orderID int64, order models.Order) (models.Order, error) {
	var updated models.Order
	err := s.client.Put(ctx, fmt.Sprintf("/api/orders/%d", orderID), order, &updated)
	return updated, err
}

// UpdateStatus sends a partial update carrying only the new status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int64, status string) (models.Order, error) {
	var updated models.Order
	body := map[string]string{"status": status}
	err := s.client.Put(ctx, fmt.Sprintf("/api/orders/%d", orderID), body, &updated)
	return updated, err
}

func (s *OrderService) Delete(ctx context.Context, orderID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/api/orders/%d", orderID))
}
