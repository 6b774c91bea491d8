package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request so storefront and shop API logs can be
// correlated. An incoming X-Request-Id is kept, otherwise one is minted.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Set("requestId", id)
		ctx.Header("X-Request-Id", id)
		ctx.Next()
	}
}
