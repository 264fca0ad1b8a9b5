package availability

import "hoofline/models"

// overlaps reports half-open interval overlap: touching boundaries do not
// conflict, a booking ending at 10:00 leaves a 10:00 slot bookable.
func overlaps(candStart, candEnd, bStart, bEnd int) bool {
	return candStart < bEnd && candEnd > bStart
}

// MarkConflicts rejects candidate slots that overlap an occupying booking
// (reason "booked") and, when the queried date is today in the provider's
// local time, slots whose start is at or before now (reason "past"). Pure
// local interval computation, no external calls.
func MarkConflicts(slots []models.Slot, bookings []models.Booking, isToday bool, nowMinutes int) {
	for i := range slots {
		slot := &slots[i]
		if !slot.Available {
			continue
		}

		if isToday && slot.Start <= nowMinutes {
			slot.Available = false
			slot.Reason = models.ReasonPast
			continue
		}

		for _, b := range bookings {
			if !b.Status.Occupying() {
				continue
			}
			if overlaps(slot.Start, slot.End, b.Start, b.End) {
				slot.Available = false
				slot.Reason = models.ReasonBooked
				break
			}
		}
	}
}
