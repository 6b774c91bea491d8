package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/controllers"
)

func CatalogRoutes(server *gin.Engine, ctrl *controllers.CatalogController) {
	catalog := server.Group("/catalog")
	{
		catalog.GET("/products", ctrl.GetProducts)
		catalog.GET("/products/:id", ctrl.GetProduct)
		catalog.GET("/categories", ctrl.GetCategories)
		catalog.GET("/categories/:id", ctrl.GetCategory)
	}
}
