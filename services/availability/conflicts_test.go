package availability

import (
	"testing"

	"hoofline/models"
)

func booking(start, end int, status models.BookingStatus) models.Booking {
	return models.Booking{
		ID:         "b1",
		ProviderID: "p1",
		Date:       "2026-09-07",
		Start:      start,
		End:        end,
		Status:     status,
	}
}

func TestMarkConflictsBookedOverlap(t *testing.T) {
	// a confirmed 10:00-11:00 booking against hour slots on a 15-minute grid
	slots := GenerateSlots(openDay(540, 1020), 60, 15)
	bookings := []models.Booking{booking(600, 660, models.BookingStatusConfirmed)}

	MarkConflicts(slots, bookings, false, 0)

	for _, s := range slots {
		wantBlocked := s.Start < 660 && s.End > 600
		if wantBlocked && s.Available {
			t.Fatalf("slot %d-%d overlaps booking but stayed available", s.Start, s.End)
		}
		if wantBlocked && s.Reason != models.ReasonBooked {
			t.Fatalf("slot %d-%d reason = %q, want %q", s.Start, s.End, s.Reason, models.ReasonBooked)
		}
		if !wantBlocked && !s.Available {
			t.Fatalf("slot %d-%d does not overlap booking but was blocked", s.Start, s.End)
		}
	}
}

func TestMarkConflictsTouchingBoundariesDoNotConflict(t *testing.T) {
	slots := []models.Slot{
		{Start: 540, End: 600, Available: true}, // ends exactly when booking starts
		{Start: 660, End: 720, Available: true}, // starts exactly when booking ends
	}
	bookings := []models.Booking{booking(600, 660, models.BookingStatusPending)}

	MarkConflicts(slots, bookings, false, 0)

	for _, s := range slots {
		if !s.Available {
			t.Fatalf("slot %d-%d touches booking boundary, should remain available", s.Start, s.End)
		}
	}
}

func TestMarkConflictsCancelledBookingDoesNotBlock(t *testing.T) {
	slots := []models.Slot{{Start: 600, End: 660, Available: true}}
	bookings := []models.Booking{booking(600, 660, models.BookingStatusCancelled)}

	MarkConflicts(slots, bookings, false, 0)

	if !slots[0].Available {
		t.Fatal("cancelled booking must not block the slot")
	}
}

func TestMarkConflictsPastSlotsToday(t *testing.T) {
	slots := []models.Slot{
		{Start: 540, End: 600, Available: true},
		{Start: 600, End: 660, Available: true}, // start == now is already past
		{Start: 615, End: 675, Available: true},
	}

	MarkConflicts(slots, nil, true, 600)

	if slots[0].Available || slots[0].Reason != models.ReasonPast {
		t.Fatalf("slot before now should be past, got available=%v reason=%q", slots[0].Available, slots[0].Reason)
	}
	if slots[1].Available || slots[1].Reason != models.ReasonPast {
		t.Fatalf("slot starting at now should be past, got available=%v reason=%q", slots[1].Available, slots[1].Reason)
	}
	if !slots[2].Available {
		t.Fatal("future slot should stay available")
	}
}

func TestMarkConflictsPastIgnoredOnOtherDays(t *testing.T) {
	slots := []models.Slot{{Start: 540, End: 600, Available: true}}

	MarkConflicts(slots, nil, false, 1380)

	if !slots[0].Available {
		t.Fatal("past hiding must only apply when the queried date is today")
	}
}
