package lifecycle

import (
	"testing"

	"hoofline/models"
)

func TestCheckBookingTransition(t *testing.T) {
	tests := []struct {
		from, to models.BookingStatus
		allowed  bool
	}{
		{models.BookingStatusPending, models.BookingStatusConfirmed, true},
		{models.BookingStatusPending, models.BookingStatusCancelled, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusConfirmed, models.BookingStatusCompleted, true},
		{models.BookingStatusConfirmed, models.BookingStatusCancelled, true},
		{models.BookingStatusConfirmed, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusCancelled, false},
		{models.BookingStatusCancelled, models.BookingStatusPending, false},
		{models.BookingStatusCancelled, models.BookingStatusConfirmed, false},
	}
	for _, tt := range tests {
		err := CheckBookingTransition(tt.from, tt.to)
		if tt.allowed && err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tt.from, tt.to, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestCheckRouteTransition(t *testing.T) {
	tests := []struct {
		from, to models.RouteOrderStatus
		allowed  bool
	}{
		{models.RouteStatusPending, models.RouteStatusConfirmed, true},
		{models.RouteStatusPending, models.RouteStatusCancelled, true},
		{models.RouteStatusPending, models.RouteStatusInProgress, false},
		{models.RouteStatusConfirmed, models.RouteStatusInProgress, true},
		{models.RouteStatusConfirmed, models.RouteStatusCancelled, true},
		{models.RouteStatusConfirmed, models.RouteStatusCompleted, false},
		{models.RouteStatusInProgress, models.RouteStatusCompleted, true},
		{models.RouteStatusInProgress, models.RouteStatusCancelled, true},
		{models.RouteStatusCompleted, models.RouteStatusCancelled, false},
		{models.RouteStatusCancelled, models.RouteStatusPending, false},
	}
	for _, tt := range tests {
		err := CheckRouteTransition(tt.from, tt.to)
		if tt.allowed && err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tt.from, tt.to, err)
		}
		if !tt.allowed && err == nil {
			t.Errorf("%s -> %s should be rejected", tt.from, tt.to)
		}
	}
}

func TestCheckStopTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to models.RouteStopStatus
		note     string
		allowed  bool
	}{
		{"complete", models.StopStatusPending, models.StopStatusCompleted, "", true},
		{"skip", models.StopStatusPending, models.StopStatusSkipped, "", true},
		{"problem with note", models.StopStatusPending, models.StopStatusProblem, "horse not caught", true},
		{"problem without note", models.StopStatusPending, models.StopStatusProblem, "", false},
		{"completed is terminal", models.StopStatusCompleted, models.StopStatusSkipped, "", false},
		{"skipped is terminal", models.StopStatusSkipped, models.StopStatusPending, "", false},
		{"problem is terminal", models.StopStatusProblem, models.StopStatusCompleted, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStopTransition(tt.from, tt.to, tt.note)
			if tt.allowed && err != nil {
				t.Fatalf("%s -> %s should be allowed: %v", tt.from, tt.to, err)
			}
			if !tt.allowed && err == nil {
				t.Fatalf("%s -> %s should be rejected", tt.from, tt.to)
			}
		})
	}
}
