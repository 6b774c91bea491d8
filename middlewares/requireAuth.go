package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/my3dwebshop/storefront/session"
)

func RequireAuth(sess *session.Session) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !sess.IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Sign in required"})
			return
		}
		ctx.Next()
	}
}

func RequireAdmin(sess *session.Session) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !sess.IsAuthenticated() {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Sign in required"})
			return
		}
		if !sess.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		ctx.Next()
	}
}
