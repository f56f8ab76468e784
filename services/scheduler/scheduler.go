package scheduler

import (
	"encoding/json"
	"time"

	"chorus/models"
	"chorus/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// TypeReminderFire is the task type of a scheduled reminder alarm.
const TypeReminderFire = "reminder:fire"

// ReminderQueue is the asynq queue reminder alarms live on.
const ReminderQueue = "default"

// TaskEnqueuer is the slice of *asynq.Client the scheduler needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// TaskRemover is the slice of *asynq.Inspector the scheduler needs.
type TaskRemover interface {
	DeleteTask(queue, id string) error
}

// AsynqAlarmScheduler implements AlarmScheduler on asynq delayed tasks. The
// returned handle is the queued task's id.
type AsynqAlarmScheduler struct {
	Enqueuer TaskEnqueuer
	Remover  TaskRemover
}

// NewAsynqAlarmScheduler builds a scheduler on the given redis connection.
func NewAsynqAlarmScheduler(redisOpts asynq.RedisClientOpt) *AsynqAlarmScheduler {
	return &AsynqAlarmScheduler{
		Enqueuer: asynq.NewClient(redisOpts),
		Remover:  asynq.NewInspector(redisOpts),
	}
}

// Schedule registers a one-shot alarm firing notifyBefore seconds ahead of
// the reminder's event date.
func (s *AsynqAlarmScheduler) Schedule(reminder *models.Reminder, previousHandle string) string {
	logger := utils.GetLogger()

	triggerAt := reminder.EventDate.Add(-time.Duration(reminder.NotifyBefore) * time.Second)
	if !triggerAt.After(time.Now()) {
		// Past-due alarms are silently skipped by policy.
		logger.Info("Schedule: trigger time already elapsed, no alarm registered",
			zap.String("reminderId", reminder.ID),
			zap.Time("triggerAt", triggerAt))
		return ""
	}

	if previousHandle != "" {
		if err := s.Cancel(previousHandle); err != nil {
			logger.Warn("Schedule: failed to cancel previous alarm",
				zap.String("reminderId", reminder.ID),
				zap.String("handle", previousHandle),
				zap.Error(err))
		}
	}

	payload, err := json.Marshal(models.ReminderFirePayload{
		ReminderID: reminder.ID,
		Title:      reminder.Title,
		Message:    reminder.Message,
	})
	if err != nil {
		logger.Error("Schedule: failed to encode alarm payload",
			zap.String("reminderId", reminder.ID), zap.Error(err))
		return ""
	}

	task := asynq.NewTask(TypeReminderFire, payload)
	info, err := s.Enqueuer.Enqueue(task, asynq.ProcessAt(triggerAt), asynq.Queue(ReminderQueue))
	if err != nil {
		logger.Error("Schedule: failed to register alarm",
			zap.String("reminderId", reminder.ID),
			zap.Time("triggerAt", triggerAt),
			zap.Error(err))
		return ""
	}

	logger.Info("Schedule: alarm registered",
		zap.String("reminderId", reminder.ID),
		zap.String("handle", info.ID),
		zap.Time("triggerAt", triggerAt))
	return info.ID
}

// Cancel removes a registered alarm by its task id.
func (s *AsynqAlarmScheduler) Cancel(handle string) error {
	return s.Remover.DeleteTask(ReminderQueue, handle)
}
