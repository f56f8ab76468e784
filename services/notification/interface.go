package notification

import (
	"context"

	userRepo "chorus/database/repository/user"
	"chorus/models"
	"chorus/utils"

	"go.uber.org/zap"
)

// maxTicketErrorLogs caps per-message error logging so a large failed batch
// cannot flood the log.
const maxTicketErrorLogs = 5

// NotificationService defines methods for broadcasting reminder pushes.
type NotificationService interface {
	// DispatchReminder resolves the reminder's audience and submits one push
	// batch. Fire-and-forget: every failure is logged and swallowed.
	DispatchReminder(ctx context.Context, reminder *models.Reminder)
	// TokenHealth reports how many users can actually receive a push.
	TokenHealth() (*models.TokenHealthReport, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Users   userRepo.UserRepository
	Gateway PushGateway
}

// DispatchReminder sends the reminder to every user in its target audience
// that carries a deliverable push token.
func (s *DefaultNotificationService) DispatchReminder(ctx context.Context, reminder *models.Reminder) {
	logger := utils.GetLogger()

	audience, err := s.resolveAudience(reminder.TargetUsers)
	if err != nil {
		logger.Error("DispatchReminder: audience resolution failed",
			zap.String("reminderId", reminder.ID),
			zap.String("targetUsers", string(reminder.TargetUsers)),
			zap.Error(err))
		return
	}

	tokens := collectTokens(audience)
	if len(tokens) == 0 {
		logger.Info("DispatchReminder: no deliverable tokens, skipping broadcast",
			zap.String("reminderId", reminder.ID),
			zap.String("targetUsers", string(reminder.TargetUsers)))
		return
	}

	messages := make([]models.PushMessage, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, models.PushMessage{
			To:    token,
			Title: reminder.Title,
			Body:  reminder.Message,
			Sound: "default",
			Data: map[string]string{
				"reminderId": reminder.ID,
				"type":       "reminder",
			},
		})
	}

	tickets, err := s.Gateway.SendBatch(ctx, messages)
	if err != nil {
		logger.Error("DispatchReminder: push batch submission failed",
			zap.String("reminderId", reminder.ID),
			zap.Int("messages", len(messages)),
			zap.Error(err))
		return
	}

	failed := 0
	for i, ticket := range tickets {
		if ticket.Status == "ok" {
			continue
		}
		failed++
		if failed <= maxTicketErrorLogs {
			logger.Warn("DispatchReminder: message rejected by gateway",
				zap.String("reminderId", reminder.ID),
				zap.Int("index", i),
				zap.String("message", ticket.Message))
		}
	}
	if failed > maxTicketErrorLogs {
		logger.Warn("DispatchReminder: further message errors suppressed",
			zap.String("reminderId", reminder.ID),
			zap.Int("failed", failed),
			zap.Int("logged", maxTicketErrorLogs))
	}

	logger.Info("DispatchReminder: batch complete",
		zap.String("reminderId", reminder.ID),
		zap.Int("sent", len(messages)-failed),
		zap.Int("failed", failed))
}

// resolveAudience maps a target audience onto the user set it addresses. An
// unrecognized value resolves to an empty audience (fail closed).
func (s *DefaultNotificationService) resolveAudience(target models.TargetAudience) ([]models.User, error) {
	switch target {
	case models.AudienceAll:
		return s.Users.GetAll()
	case models.AudienceAdmin:
		return s.Users.GetByRoles(models.RoleAdmin)
	case models.AudienceArtists:
		return s.Users.GetByRoles(models.RoleBallet, models.RoleChoir)
	case models.AudienceBallet:
		return s.Users.GetByRoles(models.RoleBallet)
	case models.AudienceChoir:
		return s.Users.GetByRoles(models.RoleChoir)
	default:
		utils.GetLogger().Warn("resolveAudience: unrecognized target audience, resolving to empty set",
			zap.String("targetUsers", string(target)))
		return nil, nil
	}
}

// collectTokens extracts deliverable push tokens from the audience,
// deduplicated by user id.
func collectTokens(audience []models.User) []string {
	seen := make(map[string]struct{}, len(audience))
	var tokens []string
	for _, u := range audience {
		if _, dup := seen[u.ID]; dup {
			continue
		}
		seen[u.ID] = struct{}{}
		if IsDeliverableToken(u.PushToken) {
			tokens = append(tokens, u.PushToken)
		}
	}
	return tokens
}
