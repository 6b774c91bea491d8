package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/session"
)

// AdminRoutes wires the back office: products, orders, users and reviews.
func AdminRoutes(server *gin.Engine, catalog *controllers.CatalogController, orders *controllers.OrderController, users *controllers.UserController, reviews *controllers.ReviewController, sess *session.Session) {
	admin := server.Group("/admin", middlewares.RequireAdmin(sess))
	{
		admin.POST("/products", catalog.CreateProduct)
		admin.PUT("/products/:id", catalog.UpdateProduct)
		admin.DELETE("/products/:id", catalog.DeleteProduct)

		admin.GET("/orders", orders.GetOrders)
		admin.PUT("/orders/:orderId", orders.UpdateOrderStatus)
		admin.DELETE("/orders/:orderId", orders.DeleteOrder)

		admin.GET("/users", users.GetUsers)
		admin.GET("/users/:userId", users.GetUser)
		admin.PUT("/users/:userId", users.UpdateUser)
		admin.DELETE("/users/:userId", users.DeleteUser)

		admin.DELETE("/reviews/:reviewId", reviews.DeleteReview)
	}
}
