package reminderRepo

import (
	"chorus/models"
)

// ReminderRepository defines methods for reminder data access.
type ReminderRepository interface {
	// GetByID retrieves a reminder by its unique ID.
	GetByID(id string) (*models.Reminder, error)
	// GetActive retrieves all active reminders, newest event first.
	GetActive() ([]models.Reminder, error)
	// Create inserts a new reminder record.
	Create(reminder *models.Reminder) error
	// Update modifies an existing reminder record.
	Update(reminder *models.Reminder) error
	// Deactivate marks a reminder inactive without deleting it.
	Deactivate(id string) error
}
