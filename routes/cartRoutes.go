package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

func CartRoutes(server *gin.Engine, ctrl *controllers.CartController, sess *session.Session) {
	cart := server.Group("/cart", middlewares.RequireAuth(sess))
	{
		cart.GET("", ctrl.GetCart)
		cart.POST("/items", ctrl.AddToCart)
		cart.PUT("/items/:itemId", ctrl.UpdateQuantity)
		cart.DELETE("/items/:itemId", ctrl.RemoveItem)
		cart.DELETE("", ctrl.ClearCart)
	}
}
