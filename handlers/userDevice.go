package handlers

import (
	"net/http"

	userRepo "chorus/database/repository/user"
	"chorus/middleware"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserDeviceHandler stores the device push token on the calling user.
type UserDeviceHandler struct {
	Users userRepo.UserRepository
}

// NewUserDeviceHandler creates a UserDeviceHandler.
func NewUserDeviceHandler(users userRepo.UserRepository) *UserDeviceHandler {
	return &UserDeviceHandler{Users: users}
}

type pushTokenRequest struct {
	PushToken string `json:"pushToken" binding:"required"`
}

// SetPushTokenHandler handles PUT /api/users/me/push-token. Tokens are stored
// as-is; validity is checked at dispatch time, not at registration.
func (h *UserDeviceHandler) SetPushTokenHandler(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req pushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.Users.SetPushToken(user.ID, req.PushToken); err != nil {
		utils.GetLogger().Error("Failed to store push token",
			zap.String("userId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store push token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Push token stored"})
}
