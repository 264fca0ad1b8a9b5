package scheduleRepo

import "hoofline/models"

// ScheduleRepository provides read/write access to provider calendars: the
// recurring weekly template, per-date exceptions, and the provider's base
// location and timezone.
type ScheduleRepository interface {
	GetProviderByID(providerID string) (*models.Provider, error)
	GetWeeklyHours(providerID string, weekday int) (*models.WeeklyHours, error)
	UpsertWeeklyHours(hours *models.WeeklyHours) error
	GetDateException(providerID, date string) (*models.DateException, error)
	UpsertDateException(exc *models.DateException) error
	DeleteDateException(providerID, date string) error
}
