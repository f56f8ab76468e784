package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"chorus/config"
	reminderRepo "chorus/database/repository/reminder"
	"chorus/models"
	"chorus/services/notification"
	"chorus/services/scheduler"
	"chorus/utils"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async worker in background. It consumes due
// reminder alarms and pushes them out through the notification service.
func InitReminderWorker(notifSvc notification.NotificationService, reminders reminderRepo.ReminderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				scheduler.ReminderQueue: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(scheduler.TypeReminderFire, handleReminderFire(notifSvc, reminders))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderFire(notifSvc notification.NotificationService, reminders reminderRepo.ReminderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderFirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] Invalid payload: %v", err)
			return err
		}

		rem, err := reminders.GetByID(p.ReminderID)
		if err != nil {
			log.Printf("[ReminderWorker] Reminder %s no longer exists, dropping alarm: %v", p.ReminderID, err)
			return nil
		}
		if !rem.IsActive {
			log.Printf("[ReminderWorker] Reminder %s is inactive, dropping alarm", p.ReminderID)
			return nil
		}

		log.Printf("[ReminderWorker] Firing reminder %s: %s", rem.ID, rem.Title)
		notifSvc.DispatchReminder(ctx, rem)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := utils.GetReminderQueueClient()
	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
