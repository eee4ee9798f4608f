package handlers

import (
	"errors"
	"net/http"

	"quadralink/config"
	"quadralink/services/user"
	"quadralink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Service user.UserService
	Logger  *zap.Logger
}

func NewAuthHandler(svc user.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Logger: logger}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		if user.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.Logger.Error("registration failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Account created successfully", "userId": u.ID})
}

// Login handles POST /auth/login. The token is returned in the body and set
// as an httpOnly cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		case errors.Is(err, user.ErrAccountDisabled):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			h.Logger.Error("login failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		}
		return
	}

	c.SetCookie("jwt", resp.Token, 24*60*60, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, resp)
}

// ListInstitutions handles GET /institutions.
func (h *AuthHandler) ListInstitutions(c *gin.Context) {
	insts, err := h.Service.ListInstitutions(c.Request.Context())
	if err != nil {
		h.Logger.Error("institution listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, insts)
}
