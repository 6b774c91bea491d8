package models

import "github.com/shopspring/decimal"

// Order statuses as the backend knows them. Only an admin transitions them.
const (
	OrderStatusNew        = "NEW"
	OrderStatusProcessing = "PROCESSING"
	OrderStatusShipped    = "SHIPPED"
	OrderStatusCompleted  = "COMPLETED"
	OrderStatusCanceled   = "CANCELED"
)

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusNew, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
	PaymentMethodBank = "bank"
)

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodBank:
		return true
	}
	return false
}

type OrderItem struct {
	ID      int64           `json:"id,omitempty"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
	Product *Product        `json:"product,omitempty"`
}

type Order struct {
	ID            int64           `json:"id,omitempty"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	User          *User           `json:"user,omitempty"`
	Items         []OrderItem     `json:"items,omitempty"`
	CreatedAt     Timestamp       `json:"createdAt,omitempty"`
	UpdatedAt     Timestamp       `json:"updatedAt,omitempty"`
}
