package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

type CheckoutController struct {
	checkout *services.CheckoutService
	carts    *services.CartService
	session  *session.Session
	log      *zap.Logger
}

func NewCheckoutController(checkout *services.CheckoutService, carts *services.CartService, sess *session.Session, log *zap.Logger) *CheckoutController {
	return &CheckoutController{checkout: checkout, carts: carts, session: sess, log: log}
}

// Submit finalizes the order from the current cart snapshot.
func (c *CheckoutController) Submit(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	var input services.CheckoutInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	items, err := c.carts.Items(ctx.Request.Context(), user.ID)
	if err != nil {
		c.log.Error("failed to load cart for checkout", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to load cart")
		return
	}

	order, err := c.checkout.Submit(ctx.Request.Context(), user, items, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
		case errors.Is(err, services.ErrAddressRequired):
			sendErrorResponse(ctx, http.StatusBadRequest, "Delivery address is required")
		case errors.Is(err, services.ErrInvalidPaymentMethod):
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown payment method")
		case errors.Is(err, services.ErrCardDetailsRequired):
			sendErrorResponse(ctx, http.StatusBadRequest, "Card details are required")
		default:
			c.log.Error("failed to create order", zap.Int64("userId", user.ID), zap.Error(err))
			sendErrorResponse(ctx, api.StatusOf(err), "Failed to create order")
		}
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   order,
	})
}
