package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
)

func AuthRoutes(server *gin.Engine, ctrl *controllers.AuthController) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", ctrl.Login)
		auth.POST("/register", ctrl.Register)
		auth.POST("/logout", ctrl.Logout)
		auth.GET("/profile", ctrl.Profile)
	}
}
