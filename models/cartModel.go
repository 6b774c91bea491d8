package models

import "github.com/shopspring/decimal"

type CartItem struct {
	ID         int64            `json:"id"`
	Qty        *int             `json:"qty"`
	PriceAtAdd *decimal.Decimal `json:"priceAtAdd"`
	Product    *Product         `json:"product,omitempty"`
	User       *User            `json:"user,omitempty"`
	CreatedAt  Timestamp        `json:"createdAt"`
}

// Quantity treats a missing or nonsensical qty as 1 so that totals never fail.
func (i CartItem) Quantity() int {
	if i.Qty == nil || *i.Qty < 1 {
		return 1
	}
	return *i.Qty
}

// UnitPrice falls back from the priceAtAdd snapshot to the live product price.
// A zero snapshot counts as absent, mirroring the storefront's behavior.
func (i CartItem) UnitPrice() decimal.Decimal {
	if i.PriceAtAdd != nil && !i.PriceAtAdd.IsZero() {
		return *i.PriceAtAdd
	}
	if i.Product != nil {
		return i.Product.Price
	}
	return decimal.Zero
}

// CartTotal sums unit price times quantity across the given items.
func CartTotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity())))
		total = total.Add(line)
	}
	return total
}

// FormatAmount renders an amount with two decimals for display.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// AddToCartInput is the payload for adding a product to the cart.
type AddToCartInput struct {
	ProductID int64 `json:"productId" binding:"required"`
	Qty       int   `json:"qty"`
}
