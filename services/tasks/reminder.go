package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"hoofline/config"
	"hoofline/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload is the queued reminder for an upcoming appointment.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	ProviderID string `json:"providerId"`
	CustomerID string `json:"customerId"`
	Date       string `json:"date"`
	Start      int    `json:"start"`
}

// NewReminderTask builds the asynq task firing at the given time.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders on the shared Redis
// queue. It implements lifecycle.ReminderScheduler.
type AsynqReminderScheduler struct {
	Client      *asynq.Client
	LeadMinutes int
}

// NewAsynqReminderScheduler connects a scheduler to the reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		Client:      client,
		LeadMinutes: config.AppConfig.ReminderLeadMinutes,
	}
}

// ScheduleBookingReminder enqueues a reminder ahead of the booking start. A
// booking already inside the lead window gets no reminder.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(booking *models.Booking) error {
	day, err := time.Parse("2006-01-02", booking.Date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", booking.Date, err)
	}
	fireAt := day.Add(time.Duration(booking.Start-s.LeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := ReminderPayload{
		BookingID:  booking.ID,
		ProviderID: booking.ProviderID,
		CustomerID: booking.CustomerID,
		Date:       booking.Date,
		Start:      booking.Start,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
