package controllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

type OrderController struct {
	orders  *services.OrderService
	session *session.Session
	log     *zap.Logger
}

func NewOrderController(orders *services.OrderService, sess *session.Session, log *zap.Logger) *OrderController {
	return &OrderController{orders: orders, session: sess, log: log}
}

// GetMyOrders serves the order-history page for the signed-in user.
func (c *OrderController) GetMyOrders(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	orders, err := c.orders.ByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		c.log.Error("failed to fetch orders", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch orders.")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder serves order details. Regular users only see their own orders.
func (c *OrderController) GetOrder(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.orders.Get(ctx.Request.Context(), orderID)
	if err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		c.log.Error("failed to fetch order", zap.Int64("orderId", orderID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch order.")
		return
	}

	if !c.session.IsAdmin() && (order.User == nil || order.User.ID != user.ID) {
		sendErrorResponse(ctx, http.StatusForbidden, "This order belongs to another user")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

// GetOrders is the back-office order list with status filter and pagination.
func (c *OrderController) GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}

	var (
		orders []models.Order
		err    error
	)
	if status := ctx.Query("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
			return
		}
		orders, err = c.orders.ByStatus(ctx.Request.Context(), status)
	} else {
		orders, err = c.orders.List(ctx.Request.Context())
	}
	if err != nil {
		c.log.Error("unable to fetch orders", zap.Error(err))
		respondWithError(ctx, api.StatusOf(err), "Unable to fetch orders", err)
		return
	}

	total := len(orders)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(total) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders[offset:end],
		"metadata": gin.H{
			"total":        total,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

// UpdateOrderStatus is the only mutation an order allows after creation.
func (c *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}
	if !models.ValidOrderStatus(orderStatusData.Status) {
		sendErrorResponse(ctx, http.StatusBadRequest, "Unknown order status")
		return
	}

	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := c.orders.UpdateStatus(ctx.Request.Context(), orderID, orderStatusData.Status)
	if err != nil {
		c.log.Error("failed to update order status", zap.Int64("orderId", orderID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to update order status")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Order status updated successfully.",
		"order":   order,
	})
}

func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse order id.")
		return
	}

	if err := c.orders.Delete(ctx.Request.Context(), orderID); err != nil {
		c.log.Error("failed to delete order", zap.Int64("orderId", orderID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to delete order.")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order deleted successfully."})
}
