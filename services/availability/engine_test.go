package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"hoofline/models"
	"hoofline/utils"
)

type fakeScheduleRepo struct {
	provider   *models.Provider
	weekly     map[int]*models.WeeklyHours
	exceptions map[string]*models.DateException
}

func (f *fakeScheduleRepo) GetProviderByID(providerID string) (*models.Provider, error) {
	if f.provider == nil || f.provider.ID != providerID {
		return nil, utils.NewNotFoundError("provider", providerID)
	}
	return f.provider, nil
}

func (f *fakeScheduleRepo) GetWeeklyHours(_ string, weekday int) (*models.WeeklyHours, error) {
	return f.weekly[weekday], nil
}

func (f *fakeScheduleRepo) UpsertWeeklyHours(hours *models.WeeklyHours) error {
	if f.weekly == nil {
		f.weekly = make(map[int]*models.WeeklyHours)
	}
	f.weekly[hours.Weekday] = hours
	return nil
}

func (f *fakeScheduleRepo) GetDateException(_ string, date string) (*models.DateException, error) {
	return f.exceptions[date], nil
}

func (f *fakeScheduleRepo) UpsertDateException(exc *models.DateException) error {
	if f.exceptions == nil {
		f.exceptions = make(map[string]*models.DateException)
	}
	f.exceptions[exc.Date] = exc
	return nil
}

func (f *fakeScheduleRepo) DeleteDateException(_ string, date string) error {
	delete(f.exceptions, date)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string][]models.Booking // date -> sorted occupying bookings
}

func (f *fakeBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	return nil, utils.NewNotFoundError("booking", bookingID)
}

func (f *fakeBookingRepo) GetOccupyingByProviderAndDate(_ string, date string) ([]models.Booking, error) {
	return f.bookings[date], nil
}

func (f *fakeBookingRepo) GetService(serviceID string) (*models.Service, error) {
	return nil, utils.NewNotFoundError("service", serviceID)
}

func (f *fakeBookingRepo) CreateBooking(*models.Booking) error { return nil }

func (f *fakeBookingRepo) UpdateStatus(string, models.BookingStatus) error { return nil }

func newTestEngine(schedule *fakeScheduleRepo, bookings *fakeBookingRepo) *DefaultEngine {
	return &DefaultEngine{
		ScheduleRepo:    schedule,
		BookingRepo:     bookings,
		GranularityMin:  15,
		TravelBufferMin: 10,
		WorkerLimit:     2,
		CallTimeout:     time.Second,
		// fixed clock well before the queried week, so nothing is "past"
		Now: func() time.Time {
			return time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)
		},
	}
}

func mondayRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		provider: &models.Provider{
			ID:           "p1",
			Name:         "Iron & Anvil Farriery",
			ServiceType:  "farrier",
			BaseLocation: models.Location{Name: "Home yard", Geo: basePoint},
			Timezone:     "UTC",
		},
		weekly: map[int]*models.WeeklyHours{
			1: {ProviderID: "p1", Weekday: 1, Start: 540, End: 1020},
		},
	}
}

func TestGetDayAvailabilityHappyPath(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{
		bookings: map[string][]models.Booking{
			"2026-09-07": {booking(600, 660, models.BookingStatusConfirmed)},
		},
	})

	day, err := engine.GetDayAvailability(context.Background(), "p1", "2026-09-07", QueryOptions{ServiceDurationMin: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day.IsClosed {
		t.Fatal("Monday should be open")
	}
	if len(day.Slots) != 29 {
		t.Fatalf("got %d slots, want 29", len(day.Slots))
	}

	var available int
	for _, s := range day.Slots {
		if s.Available {
			available++
		}
	}
	// the 10:00-11:00 booking blocks the 7 slots starting 09:15 .. 10:45
	if available != 22 {
		t.Fatalf("got %d available slots, want 22", available)
	}
}

func TestGetDayAvailabilityExceptionClosure(t *testing.T) {
	schedule := mondayRepo()
	schedule.exceptions = map[string]*models.DateException{
		"2026-09-07": {ProviderID: "p1", Date: "2026-09-07", IsClosed: true, Reason: "trade fair"},
	}
	engine := newTestEngine(schedule, &fakeBookingRepo{})

	day, err := engine.GetDayAvailability(context.Background(), "p1", "2026-09-07", QueryOptions{ServiceDurationMin: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.IsClosed {
		t.Fatal("closure exception must override the weekly template")
	}
	if len(day.Slots) != 0 {
		t.Fatalf("closed day returned %d slots", len(day.Slots))
	}
}

func TestGetDayAvailabilityMissingTemplateIsClosed(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{})

	// Tuesday has no template row
	day, err := engine.GetDayAvailability(context.Background(), "p1", "2026-09-08", QueryOptions{ServiceDurationMin: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !day.IsClosed {
		t.Fatal("a weekday with no template row must read as closed")
	}
}

func TestGetDayAvailabilityValidation(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{})

	tests := []struct {
		name       string
		providerID string
		date       string
		opts       QueryOptions
	}{
		{"missing provider id", "", "2026-09-07", QueryOptions{ServiceDurationMin: 60}},
		{"malformed date", "p1", "07-09-2026", QueryOptions{ServiceDurationMin: 60}},
		{"zero duration", "p1", "2026-09-07", QueryOptions{}},
		{"invalid coordinates", "p1", "2026-09-07", func() QueryOptions {
			bad := models.NewGeoPoint(120.0, 4.0)
			return QueryOptions{ServiceDurationMin: 60, CustomerLocation: &bad}
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.GetDayAvailability(context.Background(), tt.providerID, tt.date, tt.opts)
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want a validation error", err)
			}
		})
	}
}

func TestGetDayAvailabilityIdempotent(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{
		bookings: map[string][]models.Booking{
			"2026-09-07": {booking(600, 660, models.BookingStatusConfirmed)},
		},
	})
	opts := QueryOptions{ServiceDurationMin: 45}

	first, err := engine.GetDayAvailability(context.Background(), "p1", "2026-09-07", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.GetDayAvailability(context.Background(), "p1", "2026-09-07", opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical queries with unchanged state must return identical results")
	}
}

func TestGetWeekAvailability(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{})

	week, err := engine.GetWeekAvailability(context.Background(), "p1", "2026-09-07", QueryOptions{ServiceDurationMin: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(week.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(week.Days))
	}

	wantDates := []string{
		"2026-09-07", "2026-09-08", "2026-09-09", "2026-09-10",
		"2026-09-11", "2026-09-12", "2026-09-13",
	}
	for i, d := range week.Days {
		if d.Date != wantDates[i] {
			t.Fatalf("day %d date = %q, want %q", i, d.Date, wantDates[i])
		}
		// only Monday has a template row
		if i == 0 && d.IsClosed {
			t.Fatal("Monday should be open")
		}
		if i > 0 && !d.IsClosed {
			t.Fatalf("%s has no template row and should be closed", d.Date)
		}
	}
}

func TestGetDayAvailabilityUnknownProvider(t *testing.T) {
	engine := newTestEngine(mondayRepo(), &fakeBookingRepo{})

	_, err := engine.GetDayAvailability(context.Background(), "ghost", "2026-09-07", QueryOptions{ServiceDurationMin: 60})
	var nf *utils.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("got %v, want a not-found error", err)
	}
}
