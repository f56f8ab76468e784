package handlers

import (
	"net/http"
	"time"

	userRepo "chorus/database/repository/user"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL is the lifetime of an issued session token.
const tokenTTL = 30 * 24 * time.Hour

// AuthHandler exposes login.
type AuthHandler struct {
	Users userRepo.UserRepository
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(users userRepo.UserRepository) *AuthHandler {
	return &AuthHandler{Users: users}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	user, err := h.Users.GetByEmail(req.Email)
	if err != nil {
		logger.Error("Login lookup failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, tokenTTL)
	if err != nil {
		logger.Error("Token generation failed", zap.String("userId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
