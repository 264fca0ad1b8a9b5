package availability

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hoofline/models"
	"hoofline/services/routing"
	"hoofline/utils"

	"go.uber.org/zap"
)

// commitment is a fixed obligation the provider must drive from or to: an
// occupying booking with a known customer location, or the day's work
// location anchoring the boundaries of the open interval.
type commitment struct {
	Start    int
	End      int
	Location models.GeoPoint
	Located  bool
}

// legRequest identifies one origin/destination pair whose routed duration is
// needed to judge feasibility.
type legRequest struct {
	From models.GeoPoint
	To   models.GeoPoint
}

func legRequestKey(r legRequest) string {
	return fmt.Sprintf("%.5f,%.5f|%.5f,%.5f", r.From.Lat(), r.From.Lon(), r.To.Lat(), r.To.Lon())
}

// legResult carries a routed duration or records that the lookup failed.
type legResult struct {
	Minutes int
	Failed  bool
}

// buildCommitments assembles the day's located commitments sorted by start
// (the occupying bookings arrive sorted from the repository) plus the anchor
// commitments pinning the open-interval boundaries to the day's location.
func buildCommitments(day models.DaySchedule, bookings []models.Booking) []commitment {
	anchorLocated := day.Location.Geo.Valid()

	commitments := make([]commitment, 0, len(bookings)+2)
	commitments = append(commitments, commitment{
		Start:    day.OpenStart,
		End:      day.OpenStart,
		Location: day.Location.Geo,
		Located:  anchorLocated,
	})
	for _, b := range bookings {
		if !b.Status.Occupying() {
			continue
		}
		c := commitment{Start: b.Start, End: b.End}
		if b.Location != nil && b.Location.Geo.Valid() {
			c.Location = b.Location.Geo
			c.Located = true
		}
		commitments = append(commitments, c)
	}
	commitments = append(commitments, commitment{
		Start:    day.OpenEnd,
		End:      day.OpenEnd,
		Location: day.Location.Geo,
		Located:  anchorLocated,
	})
	return commitments
}

// neighbors finds the nearest commitment ending at or before the slot starts
// and the nearest one starting at or after it ends.
func neighbors(commitments []commitment, slot models.Slot) (prev, next *commitment) {
	for i := range commitments {
		c := &commitments[i]
		if c.End <= slot.Start && (prev == nil || c.End > prev.End) {
			prev = c
		}
		if c.Start >= slot.End && (next == nil || c.Start < next.Start) {
			next = c
		}
	}
	return prev, next
}

// travelFilter rejects slots whose gaps to the neighboring commitments cannot
// absorb the routed travel time plus the safety buffer.
type travelFilter struct {
	Routing     routing.Client
	BufferMin   int
	WorkerLimit int
	CallTimeout time.Duration
}

// Apply marks infeasible slots with reason "travel-time" and reports whether
// any routing lookup failed. On lookup failure the affected slots fail
// closed: a degraded routing provider degrades availability, it never
// produces an itinerary that cannot physically be driven.
func (f *travelFilter) Apply(ctx context.Context, day models.DaySchedule, slots []models.Slot, bookings []models.Booking, customer models.GeoPoint) bool {
	commitments := buildCommitments(day, bookings)

	// Collect the unique legs needed across all surviving slots so each
	// origin/destination pair is routed once.
	type slotLegs struct {
		prevKey string // leg prev.Location -> customer, "" when unconstrained
		prevGap int
		nextKey string // leg customer -> next.Location
		nextGap int
	}
	needs := make([]slotLegs, len(slots))
	requests := make(map[string]legRequest)

	for i := range slots {
		if !slots[i].Available {
			continue
		}
		prev, next := neighbors(commitments, slots[i])
		if prev != nil && prev.Located {
			req := legRequest{From: prev.Location, To: customer}
			key := legRequestKey(req)
			requests[key] = req
			needs[i].prevKey = key
			needs[i].prevGap = slots[i].Start - prev.End
		}
		if next != nil && next.Located {
			req := legRequest{From: customer, To: next.Location}
			key := legRequestKey(req)
			requests[key] = req
			needs[i].nextKey = key
			needs[i].nextGap = next.Start - slots[i].End
		}
	}
	if len(requests) == 0 {
		return false
	}

	results := f.fetchLegs(ctx, requests)

	degraded := false
	for i := range slots {
		slot := &slots[i]
		if !slot.Available {
			continue
		}
		for _, side := range []struct {
			key string
			gap int
		}{
			{needs[i].prevKey, needs[i].prevGap},
			{needs[i].nextKey, needs[i].nextGap},
		} {
			if side.key == "" {
				continue
			}
			res := results[side.key]
			if res.Failed {
				degraded = true
			}
			if res.Failed || res.Minutes+f.BufferMin > side.gap {
				slot.Available = false
				slot.Reason = models.ReasonTravelTime
				break
			}
		}
	}
	return degraded
}

// fetchLegs resolves the routed duration for every unique leg concurrently,
// bounded by the worker limit, each call under its own timeout. A failed
// lookup is recorded, not retried here: the client already retried once.
func (f *travelFilter) fetchLegs(ctx context.Context, requests map[string]legRequest) map[string]legResult {
	logger := utils.GetLogger()

	limit := f.WorkerLimit
	if limit <= 0 {
		limit = 4
	}
	timeout := f.CallTimeout
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	sem := make(chan struct{}, limit)

	var mu sync.Mutex
	var wg sync.WaitGroup
	results := make(map[string]legResult, len(requests))

	for key, req := range requests {
		wg.Add(1)
		go func(key string, req legRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			leg, err := f.Routing.Leg(callCtx, req.From, req.To)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Warn("travel feasibility leg failed closed",
					zap.String("leg", key), zap.Error(err))
				results[key] = legResult{Failed: true}
				return
			}
			results[key] = legResult{Minutes: int(leg.DurationSeconds+59) / 60}
		}(key, req)
	}
	wg.Wait()
	return results
}
