package availability

import "hoofline/models"

// ResolveDaySchedule merges the weekly template with an optional date
// exception into the effective open interval for one date. The exception,
// when present, fully determines closed/hours/location, even when it opens
// fewer or different hours than the template. A missing template row means
// closed: on a data gap we fail safe, never assume open.
func ResolveDaySchedule(base models.Location, weekly *models.WeeklyHours, exc *models.DateException, date string) models.DaySchedule {
	day := models.DaySchedule{Date: date, Location: base}

	if exc != nil {
		day.IsClosed = exc.IsClosed
		if !exc.IsClosed {
			day.OpenStart = exc.Start
			day.OpenEnd = exc.End
		}
		if exc.WorkLocation != nil {
			day.Location = *exc.WorkLocation
		}
		return day
	}

	if weekly == nil || weekly.IsClosed {
		day.IsClosed = true
		return day
	}

	day.OpenStart = weekly.Start
	day.OpenEnd = weekly.End
	return day
}
