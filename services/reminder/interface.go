package reminder

import (
	"time"

	"chorus/models"
)

// ReminderInput is the form state collected by the reminder editor.
type ReminderInput struct {
	Title        string                `json:"title"`
	Message      string                `json:"message"`
	Type         models.ReminderType   `json:"type"`
	EventDate    time.Time             `json:"eventDate"`
	NotifyBefore int64                 `json:"notifyBefore"`
	TargetUsers  models.TargetAudience `json:"targetUsers"`
}

// ReminderService orchestrates reminder persistence and its side effects.
type ReminderService interface {
	// Create validates and persists a new reminder, arms its alarm and
	// broadcasts a push to the target audience. The broadcast happens on
	// creation only.
	Create(input ReminderInput, createdBy *models.User) (*models.Reminder, error)
	// Update validates and persists an edit, replacing the previously armed
	// alarm. Edits never re-broadcast.
	Update(id string, input ReminderInput, updatedBy *models.User) (*models.Reminder, error)
	// List returns all active reminders.
	List() ([]models.Reminder, error)
	// Deactivate retires a reminder and cancels its armed alarm.
	Deactivate(id string, by *models.User) error
}
