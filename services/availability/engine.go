package availability

import (
	"context"
	"fmt"
	"time"

	bookingRepo "hoofline/database/repository/booking"
	scheduleRepo "hoofline/database/repository/schedule"
	"hoofline/models"
	"hoofline/services/routing"
	"hoofline/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

// Engine computes bookable time slots for a provider day or week.
type Engine interface {
	GetDayAvailability(ctx context.Context, providerID, date string, opts QueryOptions) (models.DayAvailability, error)
	GetWeekAvailability(ctx context.Context, providerID, startDate string, opts QueryOptions) (models.WeekAvailability, error)
}

// QueryOptions carries the per-query inputs of an availability computation.
type QueryOptions struct {
	ServiceDurationMin int
	// CustomerLocation enables the travel-feasibility filter when set.
	CustomerLocation *models.GeoPoint
}

// DefaultEngine is the production engine: schedule resolution, slot
// generation, conflict filtering and travel feasibility, wired to the
// externally-owned read models. It holds no cross-request mutable state, so
// queries are safely parallelizable.
type DefaultEngine struct {
	ScheduleRepo scheduleRepo.ScheduleRepository
	BookingRepo  bookingRepo.BookingRepository
	Routing      routing.Client

	GranularityMin  int
	TravelBufferMin int
	WorkerLimit     int
	CallTimeout     time.Duration

	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (e *DefaultEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *DefaultEngine) granularity() int {
	if e.GranularityMin > 0 {
		return e.GranularityMin
	}
	return 15
}

func validateQuery(providerID, date string, opts QueryOptions) error {
	if providerID == "" {
		return utils.NewValidationError("providerId", "is required")
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return utils.NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	if opts.ServiceDurationMin <= 0 {
		return utils.NewValidationError("serviceDurationMinutes", "must be a positive integer")
	}
	if opts.CustomerLocation != nil && !opts.CustomerLocation.Valid() {
		return utils.NewValidationError("customerLocation", "coordinates out of range")
	}
	return nil
}

// GetDayAvailability resolves the provider's effective hours for one date and
// returns the candidate slots with per-slot availability and rejection
// reasons. Identical inputs with no intervening state change yield identical
// output.
func (e *DefaultEngine) GetDayAvailability(ctx context.Context, providerID, date string, opts QueryOptions) (models.DayAvailability, error) {
	if err := validateQuery(providerID, date, opts); err != nil {
		return models.DayAvailability{}, err
	}

	provider, err := e.ScheduleRepo.GetProviderByID(providerID)
	if err != nil {
		return models.DayAvailability{}, err
	}

	weekday := weekdayOf(date)
	weekly, err := e.ScheduleRepo.GetWeeklyHours(providerID, weekday)
	if err != nil {
		return models.DayAvailability{}, err
	}
	exc, err := e.ScheduleRepo.GetDateException(providerID, date)
	if err != nil {
		return models.DayAvailability{}, err
	}

	day := ResolveDaySchedule(provider.BaseLocation, weekly, exc, date)
	result := models.DayAvailability{
		Date:      date,
		IsClosed:  day.IsClosed,
		OpenStart: day.OpenStart,
		OpenEnd:   day.OpenEnd,
	}
	if day.IsClosed {
		return result, nil
	}

	slots := GenerateSlots(day, opts.ServiceDurationMin, e.granularity())
	if len(slots) == 0 {
		return result, nil
	}

	bookings, err := e.BookingRepo.GetOccupyingByProviderAndDate(providerID, date)
	if err != nil {
		return models.DayAvailability{}, err
	}

	isToday, nowMinutes := e.localNow(provider.Timezone, date)
	MarkConflicts(slots, bookings, isToday, nowMinutes)

	if opts.CustomerLocation != nil {
		filter := &travelFilter{
			Routing:     e.Routing,
			BufferMin:   e.TravelBufferMin,
			WorkerLimit: e.WorkerLimit,
			CallTimeout: e.CallTimeout,
		}
		result.RoutingDegraded = filter.Apply(ctx, day, slots, bookings, *opts.CustomerLocation)
	}

	result.Slots = slots
	return result, nil
}

// GetWeekAvailability computes seven consecutive days concurrently. Each day
// only reads that provider's bookings and exceptions for its own date, so the
// fan-out is safe; results are reassembled in calendar order.
func (e *DefaultEngine) GetWeekAvailability(ctx context.Context, providerID, startDate string, opts QueryOptions) (models.WeekAvailability, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return models.WeekAvailability{}, utils.NewValidationError("startDate", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", startDate))
	}

	logger := utils.GetLogger()
	week := models.WeekAvailability{
		ProviderID: providerID,
		StartDate:  startDate,
		Days:       make([]models.DayAvailability, 7),
	}

	type dayOut struct {
		idx int
		day models.DayAvailability
		err error
	}
	out := make(chan dayOut, 7)

	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		go func(idx int, date string) {
			day, err := e.GetDayAvailability(ctx, providerID, date, opts)
			out <- dayOut{idx: idx, day: day, err: err}
		}(i, date)
	}

	var firstErr error
	for i := 0; i < 7; i++ {
		res := <-out
		if res.err != nil {
			logger.Error("week availability: day computation failed",
				zap.String("providerID", providerID), zap.Error(res.err))
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		week.Days[res.idx] = res.day
	}
	if firstErr != nil {
		return models.WeekAvailability{}, firstErr
	}
	return week, nil
}

// localNow reports whether date is today in the provider's timezone and the
// current wall-clock minutes from midnight there. An unknown timezone falls
// back to UTC.
func (e *DefaultEngine) localNow(tz, date string) (bool, int) {
	loc, err := time.LoadLocation(tz)
	if err != nil || tz == "" {
		loc = time.UTC
	}
	now := e.now().In(loc)
	if now.Format(dateLayout) != date {
		return false, 0
	}
	return true, now.Hour()*60 + now.Minute()
}

func weekdayOf(date string) int {
	t, _ := time.Parse(dateLayout, date)
	return int(t.Weekday())
}
