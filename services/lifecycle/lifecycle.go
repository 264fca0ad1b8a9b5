package lifecycle

import (
	"fmt"

	"hoofline/models"
	"hoofline/utils"
)

// bookingTransitions lists the allowed booking status changes. Completed and
// cancelled are terminal.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingStatusPending:   {models.BookingStatusConfirmed, models.BookingStatusCancelled},
	models.BookingStatusConfirmed: {models.BookingStatusCompleted, models.BookingStatusCancelled},
}

// routeTransitions lists the allowed route order status changes. Any
// non-terminal route may be cancelled.
var routeTransitions = map[models.RouteOrderStatus][]models.RouteOrderStatus{
	models.RouteStatusPending:    {models.RouteStatusConfirmed, models.RouteStatusCancelled},
	models.RouteStatusConfirmed:  {models.RouteStatusInProgress, models.RouteStatusCancelled},
	models.RouteStatusInProgress: {models.RouteStatusCompleted, models.RouteStatusCancelled},
}

// stopTransitions lists the allowed stop status changes. All stop outcomes
// are terminal and never change the route status automatically.
var stopTransitions = map[models.RouteStopStatus][]models.RouteStopStatus{
	models.StopStatusPending: {models.StopStatusCompleted, models.StopStatusSkipped, models.StopStatusProblem},
}

func contains[S ~string](list []S, s S) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CheckBookingTransition returns a ConflictError when from -> to is not a
// legal booking transition.
func CheckBookingTransition(from, to models.BookingStatus) error {
	if !contains(bookingTransitions[from], to) {
		return utils.NewConflictError(fmt.Sprintf("booking cannot transition from %s to %s", from, to))
	}
	return nil
}

// CheckRouteTransition returns a ConflictError when from -> to is not a legal
// route order transition.
func CheckRouteTransition(from, to models.RouteOrderStatus) error {
	if !contains(routeTransitions[from], to) {
		return utils.NewConflictError(fmt.Sprintf("route cannot transition from %s to %s", from, to))
	}
	return nil
}

// CheckStopTransition returns a ConflictError when from -> to is not a legal
// stop transition. Marking a stop as problem requires an operator note.
func CheckStopTransition(from, to models.RouteStopStatus, note string) error {
	if !contains(stopTransitions[from], to) {
		return utils.NewConflictError(fmt.Sprintf("stop cannot transition from %s to %s", from, to))
	}
	if to == models.StopStatusProblem && note == "" {
		return utils.NewValidationError("note", "is required when reporting a stop problem")
	}
	return nil
}
