package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

type CartController struct {
	carts    *services.CartService
	products *services.ProductService
	session  *session.Session
	log      *zap.Logger
}

func NewCartController(carts *services.CartService, products *services.ProductService, sess *session.Session, log *zap.Logger) *CartController {
	return &CartController{carts: carts, products: products, session: sess, log: log}
}

// GetCart serves the cart page: the user's items plus the computed total,
// formatted with two decimals for display.
func (c *CartController) GetCart(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	items, err := c.carts.Items(ctx.Request.Context(), user.ID)
	if err != nil {
		c.log.Error("failed to fetch cart", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch cart")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"items": items,
		"total": models.FormatAmount(models.CartTotal(items)),
	})
}

// AddToCart snapshots the live product price into priceAtAdd, so later price
// changes do not move items already in the cart.
func (c *CartController) AddToCart(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var input models.AddToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if input.Qty < 1 {
		input.Qty = 1
	}

	product, err := c.products.Get(ctx.Request.Context(), input.ProductID)
	if err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
			return
		}
		c.log.Error("failed to fetch product for cart", zap.Int64("productId", input.ProductID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to add to cart")
		return
	}

	price := product.Price
	item := models.CartItem{
		Qty:        &input.Qty,
		PriceAtAdd: &price,
		Product:    &models.Product{ID: product.ID},
	}

	created, err := c.carts.Add(ctx.Request.Context(), user.ID, item)
	if err != nil {
		c.log.Error("failed to add cart item", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to add to cart")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": product.Title + " added to cart",
		"item":    created,
	})
}

// UpdateQuantity changes an item's quantity; anything below 1 removes it.
func (c *CartController) UpdateQuantity(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	var body struct {
		Qty int `json:"qty"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := c.carts.SetQuantity(ctx.Request.Context(), user.ID, itemID, body.Qty); err != nil {
		if errors.Is(err, services.ErrCartItemNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Cart item not found")
			return
		}
		c.log.Error("failed to update cart quantity", zap.Int64("itemId", itemID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Unable to update cart item quantity.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	if err := c.carts.Remove(ctx.Request.Context(), user.ID, itemID); err != nil {
		c.log.Error("failed to remove cart item", zap.Int64("itemId", itemID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to remove cart item")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item removed"})
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	if err := c.carts.Clear(ctx.Request.Context(), user.ID); err != nil {
		c.log.Error("failed to clear cart", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to clear cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart cleared"})
}
