package lifecycle

import (
	"time"

	bookingRepo "hoofline/database/repository/booking"
	routeRepo "hoofline/database/repository/route"
	"hoofline/models"
	"hoofline/utils"

	"go.uber.org/zap"
)

// ReminderScheduler schedules an appointment reminder for a confirmed
// booking. Delivery itself is owned by the notification worker.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// Service validates and applies lifecycle transitions for bookings, route
// orders and route stops. Status changes are the only way bookings start or
// stop occupying a slot; the availability engine reads booking status fresh
// on every query, so a transition is visible immediately.
type Service struct {
	BookingRepo bookingRepo.BookingRepository
	RouteRepo   routeRepo.RouteRepository
	Reminders   ReminderScheduler
}

// TransitionBookingStatus applies one booking transition after validating it
// against the state machine. Confirming schedules an appointment reminder;
// reminder failures are logged, never fatal to the transition.
func (s *Service) TransitionBookingStatus(bookingID string, to models.BookingStatus) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if err := CheckBookingTransition(booking.Status, to); err != nil {
		return nil, err
	}
	if err := s.BookingRepo.UpdateStatus(bookingID, to); err != nil {
		return nil, err
	}
	booking.Status = to
	booking.UpdatedAt = time.Now()

	if to == models.BookingStatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return booking, nil
}

// TransitionRouteStatus applies one route order transition. Cancelling a
// route does not touch the customer bookings tied to its stops; each booking
// must be cancelled separately.
func (s *Service) TransitionRouteStatus(routeID string, to models.RouteOrderStatus) (*models.RouteOrder, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	if err := CheckRouteTransition(route.Status, to); err != nil {
		return nil, err
	}
	if err := s.RouteRepo.UpdateStatus(routeID, to); err != nil {
		return nil, err
	}
	route.Status = to
	return route, nil
}

// TransitionStopStatus applies one stop transition. Stop status never changes
// the route status automatically; completing a route is an explicit operator
// transition.
func (s *Service) TransitionStopStatus(routeID, stopID string, to models.RouteStopStatus, note string) (*models.RouteOrder, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	stop := route.StopByID(stopID)
	if stop == nil {
		return nil, utils.NewNotFoundError("route stop", stopID)
	}
	if err := CheckStopTransition(stop.Status, to, note); err != nil {
		return nil, err
	}
	if err := s.RouteRepo.UpdateStopStatus(routeID, stopID, to, note); err != nil {
		return nil, err
	}
	stop.Status = to
	stop.Note = note
	return route, nil
}
