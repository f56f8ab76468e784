package notification

import (
	"fmt"

	"chorus/models"
)

// TokenHealth counts users by push-token validity class and derives a
// diagnostic verdict. It never gates dispatch.
func (s *DefaultNotificationService) TokenHealth() (*models.TokenHealthReport, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, fmt.Errorf("TokenHealth: failed to load users: %w", err)
	}

	report := &models.TokenHealthReport{TotalUsers: len(users)}
	for _, u := range users {
		switch ClassifyToken(u.PushToken) {
		case TokenValid:
			report.Valid++
		case TokenDevelopment:
			report.Development++
		default:
			report.Invalid++
		}
	}

	switch {
	case report.Valid == 0:
		report.Verdict = models.VerdictCannotSend
	case report.Development > 0:
		report.Verdict = models.VerdictCanSendWithWarning
	default:
		report.Verdict = models.VerdictCanSend
	}
	return report, nil
}
