package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

func CheckoutRoutes(server *gin.Engine, ctrl *controllers.CheckoutController, sess *session.Session) {
	server.POST("/checkout", middlewares.RequireAuth(sess), ctrl.Submit)
}
