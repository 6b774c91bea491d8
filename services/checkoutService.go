package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/models"
)

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrAddressRequired      = errors.New("delivery address is required")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrCardDetailsRequired  = errors.New("card details are required for card payment")
)

type CardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
}

func (c *CardDetails) complete() bool {
	return c != nil && c.Number != "" && c.Name != "" && c.Expiry != "" && c.CVC != ""
}

type CheckoutInput struct {
	Address       string       `json:"address"`
	PaymentMethod string       `json:"paymentMethod"`
	Card          *CardDetails `json:"card,omitempty"`
}

// CheckoutService turns the current cart into an order. The cart stays the
// authoritative source for the total; the order only mirrors it.
type CheckoutService struct {
	carts  *CartService
	orders *OrderService
	log    *zap.Logger
}

func NewCheckoutService(carts *CartService, orders *OrderService, log *zap.Logger) *CheckoutService {
	return &CheckoutService{carts: carts, orders: orders, log: log}
}

// Submit validates the checkout form against the already-loaded cart items,
// creates the order, and clears the cart once the order is accepted. An
// empty cart is rejected before anything touches the network. If clearing
// the cart fails after the order went through, the inconsistency is logged
// and the order is still returned; nothing retries.
func (s *CheckoutService) Submit(ctx context.Context, user models.User, items []models.CartItem, input CheckoutInput) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if strings.TrimSpace(input.Address) == "" {
		return models.Order{}, ErrAddressRequired
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return models.Order{}, ErrInvalidPaymentMethod
	}
	if input.PaymentMethod == models.PaymentMethodCard && !input.Card.complete() {
		return models.Order{}, ErrCardDetailsRequired
	}

	order := models.Order{
		Status:        models.OrderStatusNew,
		TotalAmount:   models.CartTotal(items),
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		User:          &models.User{ID: user.ID},
		Items:         make([]models.OrderItem, 0, len(items)),
	}
	for _, item := range items {
		orderItem := models.OrderItem{
			Qty:   item.Quantity(),
			Price: item.UnitPrice(),
		}
		if item.Product != nil {
			orderItem.Product = &models.Product{ID: item.Product.ID}
		}
		order.Items = append(order.Items, orderItem)
	}

	created, err := s.orders.Create(ctx, user.ID, order)
	if err != nil {
		return models.Order{}, err
	}

	if err := s.carts.Clear(ctx, user.ID); err != nil {
		s.log.Warn("cart not cleared after successful order",
			zap.Int64("orderId", created.ID),
			zap.Int64("userId", user.ID),
			zap.Error(err))
	}

	return created, nil
}
