package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/services"
)

// UserController is the back-office user administration surface.
type UserController struct {
	users *services.UserService
	log   *zap.Logger
}

func NewUserController(users *services.UserService, log *zap.Logger) *UserController {
	return &UserController{users: users, log: log}
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.users.List(ctx.Request.Context())
	if err != nil {
		c.log.Error("failed to fetch users", zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch users")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

func (c *UserController) GetUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := c.users.Get(ctx.Request.Context(), userID)
	if err != nil {
		if api.IsNotFound(err) {
			sendErrorResponse(ctx, http.StatusNotFound, "User not found")
			return
		}
		c.log.Error("failed to fetch user", zap.Int64("userId", userID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to fetch user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var user models.User
	if err := ctx.ShouldBindJSON(&user); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	updated, err := c.users.Update(ctx.Request.Context(), userID, user)
	if err != nil {
		c.log.Error("failed to update user", zap.Int64("userId", userID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to update user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"user": updated})
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := c.users.Delete(ctx.Request.Context(), userID); err != nil {
		c.log.Error("failed to delete user", zap.Int64("userId", userID), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), "Failed to delete user")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "User deleted successfully."})
}
