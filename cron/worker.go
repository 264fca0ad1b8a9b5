package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"hoofline/config"
	"hoofline/services/tasks"

	"github.com/hibiken/asynq"
)

// Notifier delivers a reminder to a customer. Delivery transport (push,
// email, SMS) is owned elsewhere; the default implementation just logs.
type Notifier interface {
	NotifyBookingReminder(ctx context.Context, p tasks.ReminderPayload) error
}

// LogNotifier is the fallback Notifier used until a delivery transport is
// wired in.
type LogNotifier struct{}

func (LogNotifier) NotifyBookingReminder(_ context.Context, p tasks.ReminderPayload) error {
	log.Printf("[Reminder] booking %s for customer %s on %s at %d minutes", p.BookingID, p.CustomerID, p.Date, p.Start)
	return nil
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifier Notifier) {
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
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifier))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}
		return notifier.NotifyBookingReminder(ctx, p)
	}
}
