package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the 3D webshop storefront ❤️.

The following are the endpoints for this storefront:

AUTH
- POST "/auth/login" - Sign in
- POST "/auth/register" - Create an account
- POST "/auth/logout" - Sign out
- GET "/auth/profile" - Current user

CATALOG
- GET "/catalog/products" - Browse products (search, category, sort, page, limit)
- GET "/catalog/products/:id" - Product details with reviews
- GET "/catalog/categories" - Categories
- GET "/catalog/categories/:id" - Category details

CART
- GET "/cart" - View cart with total
- POST "/cart/items" - Add a product
- PUT "/cart/items/:itemId" - Change quantity
- DELETE "/cart/items/:itemId" - Remove an item
- DELETE "/cart" - Clear the cart

CHECKOUT
- POST "/checkout" - Place an order from the cart

ORDERS
- GET "/orders" - Your order history
- GET "/orders/:orderId" - Order details

REVIEWS
- GET "/reviews" - All reviews
- GET "/reviews/product/:productId" - Reviews for a product
- GET "/reviews/mine" - Your reviews
- POST "/reviews/product/:productId" - Write a review

ADMIN (requires admin role)
- POST/PUT/DELETE "/admin/products..." - Manage products
- GET/PUT/DELETE "/admin/orders..." - Manage orders
- GET/PUT/DELETE "/admin/users..." - Manage users
- DELETE "/admin/reviews/:reviewId" - Remove a review`

	ctx.String(http.StatusOK, message)
}

func GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
