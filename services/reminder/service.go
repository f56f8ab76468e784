package reminder

import (
	"context"
	"fmt"
	"strings"
	"time"

	reminderRepo "chorus/database/repository/reminder"
	"chorus/models"
	"chorus/services/notification"
	"chorus/services/scheduler"
	"chorus/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultReminderService is the production implementation.
type DefaultReminderService struct {
	Repo     reminderRepo.ReminderRepository
	Alarms   scheduler.AlarmScheduler
	Notifier notification.NotificationService
}

// Create validates and persists a new reminder. After the record is stored,
// the alarm and the push broadcast run as best-effort side effects; their
// failures are logged and never surface as a save failure.
func (s *DefaultReminderService) Create(input ReminderInput, createdBy *models.User) (*models.Reminder, error) {
	logger := utils.GetLogger()

	if createdBy == nil || createdBy.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	rem := &models.Reminder{
		ID:           uuid.NewString(),
		Title:        strings.TrimSpace(input.Title),
		Message:      strings.TrimSpace(input.Message),
		Type:         input.Type,
		EventDate:    input.EventDate,
		NotifyBefore: input.NotifyBefore,
		TargetUsers:  input.TargetUsers,
		IsActive:     true,
		CreatedBy:    createdBy.ID,
	}

	if err := s.Repo.Create(rem); err != nil {
		return nil, fmt.Errorf("failed to save reminder: %w", err)
	}

	if handle := s.Alarms.Schedule(rem, ""); handle != "" {
		rem.LocalNotificationID = handle
		if err := s.Repo.Update(rem); err != nil {
			logger.Error("Create: failed to persist alarm handle",
				zap.String("reminderId", rem.ID), zap.Error(err))
		}
	}

	// Broadcast only on creation. Detached from the request so a slow
	// gateway cannot delay the save response.
	go s.Notifier.DispatchReminder(context.Background(), rem)

	return rem, nil
}

// Update validates and persists an edit. The previously armed alarm is
// replaced before the record is stored; no push is broadcast.
func (s *DefaultReminderService) Update(id string, input ReminderInput, updatedBy *models.User) (*models.Reminder, error) {
	if updatedBy == nil || updatedBy.Role != models.RoleAdmin {
		return nil, ErrNotAuthorized
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	rem, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("reminder not found: %w", err)
	}

	rem.Title = strings.TrimSpace(input.Title)
	rem.Message = strings.TrimSpace(input.Message)
	rem.Type = input.Type
	rem.EventDate = input.EventDate
	rem.NotifyBefore = input.NotifyBefore
	rem.TargetUsers = input.TargetUsers

	// Cancel-then-rearm, then persist the new handle with the edit.
	rem.LocalNotificationID = s.Alarms.Schedule(rem, rem.LocalNotificationID)

	if err := s.Repo.Update(rem); err != nil {
		return nil, fmt.Errorf("failed to save reminder: %w", err)
	}
	return rem, nil
}

// List returns all active reminders.
func (s *DefaultReminderService) List() ([]models.Reminder, error) {
	return s.Repo.GetActive()
}

// Deactivate retires a reminder and cancels its armed alarm.
func (s *DefaultReminderService) Deactivate(id string, by *models.User) error {
	logger := utils.GetLogger()

	if by == nil || by.Role != models.RoleAdmin {
		return ErrNotAuthorized
	}

	rem, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("reminder not found: %w", err)
	}

	if rem.LocalNotificationID != "" {
		if err := s.Alarms.Cancel(rem.LocalNotificationID); err != nil {
			logger.Warn("Deactivate: failed to cancel alarm",
				zap.String("reminderId", rem.ID),
				zap.String("handle", rem.LocalNotificationID),
				zap.Error(err))
		}
	}
	return s.Repo.Deactivate(id)
}

// validateInput checks the editor's form state. The first violation fails the
// whole save; no partial save occurs.
func validateInput(input ReminderInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ValidationError{Field: "title", Message: "title is required"}
	}
	if strings.TrimSpace(input.Message) == "" {
		return ValidationError{Field: "message", Message: "message is required"}
	}
	if !models.IsValidReminderType(input.Type) {
		return ValidationError{Field: "type", Message: "unknown reminder type"}
	}
	if !input.EventDate.After(time.Now()) {
		return ValidationError{Field: "eventDate", Message: "event date must be in the future"}
	}
	if !models.IsValidNotifyBefore(input.NotifyBefore) {
		return ValidationError{Field: "notifyBefore", Message: "unsupported lead time"}
	}
	if !models.IsValidAudience(input.TargetUsers) {
		return ValidationError{Field: "targetUsers", Message: "unknown target audience"}
	}
	return nil
}
