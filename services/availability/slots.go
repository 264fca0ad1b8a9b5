package availability

import "hoofline/models"

// GenerateSlots produces the ordered candidate slots for an open day: starts
// at OpenStart, steps by granularity, stops once a slot would run past
// OpenEnd. Pure and deterministic; every slot spans exactly durationMin.
func GenerateSlots(day models.DaySchedule, durationMin, granularityMin int) []models.Slot {
	if day.IsClosed || durationMin <= 0 || granularityMin <= 0 {
		return nil
	}

	var slots []models.Slot
	for start := day.OpenStart; start+durationMin <= day.OpenEnd; start += granularityMin {
		slots = append(slots, models.Slot{
			Start:     start,
			End:       start + durationMin,
			Available: true,
		})
	}
	return slots
}
