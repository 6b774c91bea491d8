package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/controllers"
	"github.com/my3dwebshop/storefront/initializers"
	"github.com/my3dwebshop/storefront/middlewares"
	"github.com/my3dwebshop/storefront/routes"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()
	logger := initializers.NewLogger(cfg)
	defer logger.Sync()

	// The client asks the session for its token and tells it about 401s;
	// the session talks to the API through the client. The closures break
	// the construction cycle.
	var sess *session.Session
	client := api.New(cfg.APIBaseURL, cfg.APITimeout, logger,
		api.WithTokenProvider(func() string {
			if sess == nil {
				return ""
			}
			return sess.Token()
		}),
		api.OnUnauthorized(func() {
			if sess != nil {
				sess.Invalidate()
			}
		}))

	products := services.NewProductService(client)
	categories := services.NewCategoryService(client)
	carts := services.NewCartService(client)
	orders := services.NewOrderService(client)
	users := services.NewUserService(client)
	reviews := services.NewReviewService(client)
	auth := services.NewAuthService(client)
	checkout := services.NewCheckoutService(carts, orders, logger)

	sess = session.New(session.NewFileTokenStore(cfg.TokenDir), auth, users, logger)
	sess.Init(context.Background())

	server := gin.Default()
	server.Use(middlewares.RequestID())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authCtrl := controllers.NewAuthController(sess, logger)
	catalogCtrl := controllers.NewCatalogController(products, categories, reviews, logger)
	cartCtrl := controllers.NewCartController(carts, products, sess, logger)
	checkoutCtrl := controllers.NewCheckoutController(checkout, carts, sess, logger)
	orderCtrl := controllers.NewOrderController(orders, sess, logger)
	reviewCtrl := controllers.NewReviewController(reviews, sess, logger)
	userCtrl := controllers.NewUserController(users, logger)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authCtrl)
	routes.CatalogRoutes(server, catalogCtrl)
	routes.CartRoutes(server, cartCtrl, sess)
	routes.CheckoutRoutes(server, checkoutCtrl, sess)
	routes.OrderRoutes(server, orderCtrl, sess)
	routes.ReviewRoutes(server, reviewCtrl, sess)
	routes.AdminRoutes(server, catalogCtrl, orderCtrl, userCtrl, reviewCtrl, sess)

	logger.Info("storefront listening",
		zap.Int("port", cfg.Port),
		zap.String("shopApi", cfg.APIBaseURL))
	if err := server.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
