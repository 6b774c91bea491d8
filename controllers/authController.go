package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/my3dwebshop/storefront/api"
	"github.com/my3dwebshop/storefront/models"
	"github.com/my3dwebshop/storefront/session"
)

const (
	// Standard response messages
	msgInvalidInput       = "Invalid input"
	msgInvalidCredentials = "Invalid username or password"
	msgSignInRequired     = "Sign in required"
	msgSignedOut          = "Signed out successfully."
	msgRegistrationFailed = "Registration failed"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

type AuthController struct {
	session *session.Session
	log     *zap.Logger
}

func NewAuthController(sess *session.Session, log *zap.Logger) *AuthController {
	return &AuthController{session: sess, log: log}
}

// Login signs the storefront session in against the shop API.
func (c *AuthController) Login(ctx *gin.Context) {
	var loginData struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := c.session.Login(ctx.Request.Context(), loginData.Username, loginData.Password)
	if err != nil {
		c.log.Info("login failed", zap.String("username", loginData.Username), zap.Error(err))
		if api.IsUnauthorized(err) {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		sendErrorResponse(ctx, api.StatusOf(err), msgInvalidCredentials)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": c.session.Token(),
		"user":  user,
	})
}

// Register creates the account on the shop API and signs in right away.
func (c *AuthController) Register(ctx *gin.Context) {
	var input models.RegisterInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	// The back office assigns admin roles; registration never does.
	input.Role = ""

	user, err := c.session.Register(ctx.Request.Context(), input)
	if err != nil {
		c.log.Warn("registration failed", zap.String("username", input.Username), zap.Error(err))
		sendErrorResponse(ctx, api.StatusOf(err), msgRegistrationFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"token": c.session.Token(),
		"user":  user,
	})
}

func (c *AuthController) Logout(ctx *gin.Context) {
	c.session.Logout()
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgSignedOut})
}

// Profile returns the signed-in user along with the admin flag.
func (c *AuthController) Profile(ctx *gin.Context) {
	user, ok := c.session.User()
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgSignInRequired)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"user":    user,
		"isAdmin": c.session.IsAdmin(),
	})
}
