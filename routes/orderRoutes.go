package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

func OrderRoutes(server *gin.Engine, ctrl *controllers.OrderController, sess *session.Session) {
	orders := server.Group("/orders", middlewares.RequireAuth(sess))
	{
		orders.GET("", ctrl.GetMyOrders)
		orders.GET("/:orderId", ctrl.GetOrder)
	}
}
