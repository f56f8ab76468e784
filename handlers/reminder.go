package handlers

import (
	"errors"
	"net/http"

	"chorus/middleware"
	"chorus/services/reminder"
	"chorus/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the reminder editor endpoints.
type ReminderHandler struct {
	Service reminder.ReminderService
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Service: svc}
}

// CreateReminderHandler handles POST /api/reminders.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input reminder.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rem, err := h.Service.Create(input, middleware.CurrentUser(c))
	if err != nil {
		respondSaveError(c, err)
		return
	}

	logger.Info("Reminder created", zap.String("reminderId", rem.ID))
	c.JSON(http.StatusCreated, rem)
}

// UpdateReminderHandler handles PUT /api/reminders/:id.
func (h *ReminderHandler) UpdateReminderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	var input reminder.ReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rem, err := h.Service.Update(id, input, middleware.CurrentUser(c))
	if err != nil {
		respondSaveError(c, err)
		return
	}

	logger.Info("Reminder updated", zap.String("reminderId", rem.ID))
	c.JSON(http.StatusOK, rem)
}

// ListRemindersHandler handles GET /api/reminders.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	reminders, err := h.Service.List()
	if err != nil {
		utils.GetLogger().Error("Failed to list reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *ReminderHandler) DeleteReminderHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Deactivate(id, middleware.CurrentUser(c)); err != nil {
		respondSaveError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deactivated"})
}

// respondSaveError maps service errors onto HTTP statuses: validation → 400,
// authorization → 403, anything else (persistence) → 500.
func respondSaveError(c *gin.Context, err error) {
	var vErr reminder.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, reminder.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		utils.GetLogger().Error("Reminder save failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reminder"})
	}
}
