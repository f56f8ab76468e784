package handlers

import (
	"net/http"

	"chorus/models"
	"chorus/services/notification"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthHandler exposes liveness and push-token diagnostics.
type HealthHandler struct {
	Notifier notification.NotificationService
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(notifSvc notification.NotificationService) *HealthHandler {
	return &HealthHandler{Notifier: notifSvc}
}

// LivenessHandler handles GET /healthz.
func (h *HealthHandler) LivenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}

// TokenHealthHandler handles GET /api/notifications/health. Diagnostics only;
// the verdict never gates dispatch.
func (h *HealthHandler) TokenHealthHandler(c *gin.Context) {
	report, err := h.Notifier.TokenHealth()
	if err != nil {
		utils.GetLogger().Error("Token health check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check token health"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// ReminderOptionsHandler handles GET /api/reminders/options: the picker
// tables the editor renders (lead times, audiences, reminder types).
func ReminderOptionsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifyBefore": models.NotifyBeforeOptions,
		"targetUsers": []models.TargetAudience{
			models.AudienceAll, models.AudienceAdmin, models.AudienceArtists,
			models.AudienceBallet, models.AudienceChoir,
		},
		"types": models.ReminderTypeOptions,
	})
}
