package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
	"github.com/my3dwebshop/storefront/session"
)

type ReviewController struct {
	reviews *services.ReviewService
	session *session.Session
	log     *zap.Logger
}

func NewReviewController(reviews *services.ReviewService, sess *session.Session, log *zap.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, session: sess, log: log}
}

func (c *ReviewController) GetReviews(ctx *gin.Context) {
	reviews, err := c.reviews.List(ctx.Request.Context())
	if err != nil {
		c.log.Error("failed to fetch reviews", zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch reviews")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

func (c *ReviewController) GetProductReviews(ctx *gin.Context) {
	productID, err := strconv.ParseInt(ctx.Param("productId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	reviews, err := c.reviews.ByProduct(ctx.Request.Context(), productID)
	if err != nil {
		c.log.Error("failed to fetch product reviews", zap.Int64("productId", productID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch reviews")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"reviews":       reviews,
		"averageRating": models.AverageRating(reviews),
	})
}

// GetMyReviews lists the signed-in user's reviews (profile page).
func (c *ReviewController) GetMyReviews(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	reviews, err := c.reviews.ByUser(ctx.Request.Context(), user.ID)
	if err != nil {
		c.log.Error("failed to fetch user reviews", zap.Int64("userId", user.ID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch reviews")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}

func (c *ReviewController) CreateReview(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}

	productID, err := strconv.ParseInt(ctx.Param("productId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var input models.ReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	review, err := c.reviews.Create(ctx.Request.Context(), user.ID, productID, input)
	if err != nil {
		c.log.Error("failed to create review",
			zap.Int64("userId", user.ID), zap.Int64("productId", productID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to create review")
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{"review": review})
}

func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	reviewID, err := strconv.ParseInt(ctx.Param("reviewId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid review ID")
		return
	}

	if err := c.reviews.Delete(ctx.Request.Context(), reviewID); err != nil {
		c.log.Error("failed to delete review", zap.Int64("reviewId", reviewID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to delete review")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Review deleted successfully."})
}
