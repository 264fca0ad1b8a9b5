package booking

import (
	"fmt"
	"time"

	bookingRepo "hoofline/database/repository/booking"
	scheduleRepo "hoofline/database/repository/schedule"
	"hoofline/models"
	"hoofline/services/lifecycle"
	"hoofline/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateRequest is the input for creating a booking. Start is minutes from
// midnight; the end time is derived from the service duration.
type CreateRequest struct {
	ProviderID string           `json:"providerId" binding:"required"`
	CustomerID string           `json:"customerId" binding:"required"`
	ServiceID  string           `json:"serviceId" binding:"required"`
	Date       string           `json:"date" binding:"required"`
	Start      int              `json:"start"`
	Location   *models.Location `json:"location,omitempty"`
	// ByProvider marks a manual booking entered by the provider, which is
	// confirmed immediately instead of starting as pending.
	ByProvider bool `json:"byProvider,omitempty"`
}

// Service creates bookings. The repository re-validates non-overlap inside a
// transaction at write time, so two concurrent attempts for the same slot
// cannot both succeed regardless of what the availability engine displayed.
type Service struct {
	BookingRepo  bookingRepo.BookingRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	Reminders    lifecycle.ReminderScheduler
}

// Create validates the request, freezes the customer location, and persists
// the booking with a write-time overlap check.
func (s *Service) Create(req CreateRequest) (*models.Booking, error) {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, utils.NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", req.Date))
	}
	if req.Start < 0 || req.Start >= 24*60 {
		return nil, utils.NewValidationError("start", "must be minutes from midnight within the day")
	}
	if req.Location != nil && !req.Location.Geo.Valid() {
		return nil, utils.NewValidationError("location", "coordinates out of range")
	}

	if _, err := s.ScheduleRepo.GetProviderByID(req.ProviderID); err != nil {
		return nil, err
	}
	svc, err := s.BookingRepo.GetService(req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != req.ProviderID {
		return nil, utils.NewValidationError("serviceId", "service does not belong to this provider")
	}

	status := models.BookingStatusPending
	if req.ByProvider {
		status = models.BookingStatusConfirmed
	}

	now := time.Now()
	booking := &models.Booking{
		ID:         uuid.New().String(),
		ProviderID: req.ProviderID,
		CustomerID: req.CustomerID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		Start:      req.Start,
		End:        req.Start + svc.DurationMinutes,
		Status:     status,
		Location:   req.Location,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.BookingRepo.CreateBooking(booking); err != nil {
		return nil, err
	}

	if status == models.BookingStatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return booking, nil
}
