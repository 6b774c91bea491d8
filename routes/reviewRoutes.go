package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

func ReviewRoutes(server *gin.Engine, ctrl *controllers.ReviewController, sess *session.Session) {
	reviews := server.Group("/reviews")
	{
		reviews.GET("", ctrl.GetReviews)
		reviews.GET("/product/:productId", ctrl.GetProductReviews)
		reviews.GET("/mine", middlewares.RequireAuth(sess), ctrl.GetMyReviews)
		reviews.POST("/product/:productId", middlewares.RequireAuth(sess), ctrl.CreateReview)
	}
}
