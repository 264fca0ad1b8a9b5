package bookingRepo

import "hoofline/models"

// BookingRepository provides access to booking records. CreateBooking re-checks
// overlap against occupying bookings at write time so that two concurrent
// attempts for the same slot cannot both succeed; the availability engine's
// read-side computation is advisory for display only.
type BookingRepository interface {
	GetByID(bookingID string) (*models.Booking, error)
	// GetOccupyingByProviderAndDate returns the provider's bookings for one
	// date whose status is pending, confirmed or completed, sorted by start.
	GetOccupyingByProviderAndDate(providerID, date string) ([]models.Booking, error)
	GetService(serviceID string) (*models.Service, error)
	CreateBooking(booking *models.Booking) error
	UpdateStatus(bookingID string, status models.BookingStatus) error
}
