package booking

import (
	"errors"
	"testing"

	"hoofline/models"
	"hoofline/utils"
)

type fakeBookingRepo struct {
	service  *models.Service
	existing []models.Booking
	created  *models.Booking
}

func (f *fakeBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	return nil, utils.NewNotFoundError("booking", bookingID)
}

func (f *fakeBookingRepo) GetOccupyingByProviderAndDate(string, string) ([]models.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) GetService(serviceID string) (*models.Service, error) {
	if f.service == nil || f.service.ID != serviceID {
		return nil, utils.NewNotFoundError("service", serviceID)
	}
	return f.service, nil
}

func (f *fakeBookingRepo) CreateBooking(booking *models.Booking) error {
	for _, b := range f.existing {
		if b.Date == booking.Date && b.Status.Occupying() &&
			booking.Start < b.End && booking.End > b.Start {
			return utils.NewConflictError("slot already booked")
		}
	}
	f.created = booking
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(string, models.BookingStatus) error { return nil }

type fakeScheduleRepo struct{ providerID string }

func (f *fakeScheduleRepo) GetProviderByID(providerID string) (*models.Provider, error) {
	if providerID != f.providerID {
		return nil, utils.NewNotFoundError("provider", providerID)
	}
	return &models.Provider{ID: providerID, Timezone: "UTC"}, nil
}

func (f *fakeScheduleRepo) GetWeeklyHours(string, int) (*models.WeeklyHours, error) { return nil, nil }
func (f *fakeScheduleRepo) UpsertWeeklyHours(*models.WeeklyHours) error            { return nil }
func (f *fakeScheduleRepo) GetDateException(string, string) (*models.DateException, error) {
	return nil, nil
}
func (f *fakeScheduleRepo) UpsertDateException(*models.DateException) error { return nil }
func (f *fakeScheduleRepo) DeleteDateException(string, string) error        { return nil }

type fakeReminders struct{ scheduled int }

func (f *fakeReminders) ScheduleBookingReminder(*models.Booking) error {
	f.scheduled++
	return nil
}

func shoeingService() *models.Service {
	return &models.Service{ID: "svc1", ProviderID: "p1", Name: "Full shoeing", DurationMinutes: 60}
}

func validRequest() CreateRequest {
	return CreateRequest{
		ProviderID: "p1",
		CustomerID: "c1",
		ServiceID:  "svc1",
		Date:       "2026-09-07",
		Start:      600,
	}
}

func TestCreateDerivesEndFromServiceDuration(t *testing.T) {
	repo := &fakeBookingRepo{service: shoeingService()}
	svc := &Service{BookingRepo: repo, ScheduleRepo: &fakeScheduleRepo{providerID: "p1"}}

	booking, err := svc.Create(validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.End != 660 {
		t.Fatalf("end = %d, want 660 for a 60-minute service starting at 600", booking.End)
	}
	if booking.Status != models.BookingStatusPending {
		t.Fatalf("status = %q, want pending for a customer booking", booking.Status)
	}
	if repo.created == nil {
		t.Fatal("booking was not persisted")
	}
}

func TestCreateByProviderConfirmsAndSchedulesReminder(t *testing.T) {
	repo := &fakeBookingRepo{service: shoeingService()}
	reminders := &fakeReminders{}
	svc := &Service{BookingRepo: repo, ScheduleRepo: &fakeScheduleRepo{providerID: "p1"}, Reminders: reminders}

	req := validRequest()
	req.ByProvider = true
	booking, err := svc.Create(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.Status != models.BookingStatusConfirmed {
		t.Fatalf("status = %q, want confirmed for a provider-entered booking", booking.Status)
	}
	if reminders.scheduled != 1 {
		t.Fatalf("scheduled %d reminders, want 1", reminders.scheduled)
	}
}

func TestCreateRejectsOverlapAtWriteTime(t *testing.T) {
	repo := &fakeBookingRepo{
		service: shoeingService(),
		existing: []models.Booking{{
			Date: "2026-09-07", Start: 630, End: 690,
			Status: models.BookingStatusConfirmed,
		}},
	}
	svc := &Service{BookingRepo: repo, ScheduleRepo: &fakeScheduleRepo{providerID: "p1"}}

	_, err := svc.Create(validRequest())
	var ce *utils.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("got %v, want a conflict error", err)
	}
}

func TestCreateValidation(t *testing.T) {
	repo := &fakeBookingRepo{service: shoeingService()}
	svc := &Service{BookingRepo: repo, ScheduleRepo: &fakeScheduleRepo{providerID: "p1"}}

	tests := []struct {
		name   string
		mutate func(*CreateRequest)
	}{
		{"malformed date", func(r *CreateRequest) { r.Date = "Sept 7" }},
		{"negative start", func(r *CreateRequest) { r.Start = -15 }},
		{"start past midnight", func(r *CreateRequest) { r.Start = 1500 }},
		{"bad location", func(r *CreateRequest) {
			bad := models.NewGeoPoint(95.0, 4.0)
			r.Location = &models.Location{Geo: bad}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := svc.Create(req)
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want a validation error", err)
			}
		})
	}
}

func TestCreateRejectsForeignService(t *testing.T) {
	other := shoeingService()
	other.ProviderID = "someone-else"
	repo := &fakeBookingRepo{service: other}
	svc := &Service{BookingRepo: repo, ScheduleRepo: &fakeScheduleRepo{providerID: "p1"}}

	_, err := svc.Create(validRequest())
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("got %v, want a validation error", err)
	}
}
