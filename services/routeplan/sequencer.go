package routeplan

import (
	"context"
	"sort"
	"sync"
	"time"

	"hoofline/models"
	"hoofline/services/routing"
	"hoofline/utils"

	"go.uber.org/zap"
)

// SequenceResult is an ordered day itinerary with per-stop ETAs.
type SequenceResult struct {
	Stops []models.RouteStop
	// Estimated is set when at least one leg fell back to the straight-line
	// estimate because the routing upstream was degraded.
	Estimated            bool
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
}

// Sequencer orders stops into a single-day route using greedy
// nearest-neighbor over routed driving durations. This is a heuristic, not an
// optimal tour: daily stop counts are single digits and the business need is
// a reasonable route. Ties break by stop creation order for determinism.
type Sequencer struct {
	Routing     routing.Client
	FallbackKmh float64
	CallTimeout time.Duration
}

func (s *Sequencer) callTimeout() time.Duration {
	if s.CallTimeout > 0 {
		return s.CallTimeout
	}
	return 4 * time.Second
}

// leg routes one leg, falling back to the haversine estimate on upstream
// failure so sequencing never aborts on degradation.
func (s *Sequencer) leg(ctx context.Context, from, to models.GeoPoint) routing.Leg {
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout())
	defer cancel()

	leg, err := s.Routing.Leg(callCtx, from, to)
	if err != nil {
		utils.GetLogger().Warn("route leg degraded to straight-line estimate", zap.Error(err))
		return routing.FallbackLeg(from, to, s.FallbackKmh)
	}
	return leg
}

// candidateLegs evaluates the legs from the current position to every
// remaining stop concurrently. The nearest-neighbor loop itself is
// sequential, but nothing orders the candidate lookups within one step.
func (s *Sequencer) candidateLegs(ctx context.Context, from models.GeoPoint, stops []models.RouteStop, remaining []int) map[int]routing.Leg {
	var mu sync.Mutex
	var wg sync.WaitGroup
	legs := make(map[int]routing.Leg, len(remaining))

	for _, idx := range remaining {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			to := models.NewGeoPoint(stops[idx].Latitude, stops[idx].Longitude)
			leg := s.leg(ctx, from, to)
			mu.Lock()
			legs[idx] = leg
			mu.Unlock()
		}(idx)
	}
	wg.Wait()
	return legs
}

// Sequence assigns StopOrder 0..n-1 and EstimatedArrival to the given stops,
// starting from startLocation at startTime. The input order is irrelevant;
// creation order only breaks duration ties.
func (s *Sequencer) Sequence(ctx context.Context, stops []models.RouteStop, startLocation models.GeoPoint, startTime time.Time) SequenceResult {
	if len(stops) == 0 {
		return SequenceResult{Stops: []models.RouteStop{}}
	}

	// Stable creation-order baseline makes the tie-breaker deterministic.
	ordered := make([]models.RouteStop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	remaining := make([]int, len(ordered))
	for i := range ordered {
		remaining[i] = i
	}

	result := SequenceResult{Stops: make([]models.RouteStop, 0, len(ordered))}
	current := startLocation
	clock := startTime

	for len(remaining) > 0 {
		legs := s.candidateLegs(ctx, current, ordered, remaining)

		best := -1
		for _, idx := range remaining {
			if best == -1 || legs[idx].DurationSeconds < legs[best].DurationSeconds {
				best = idx
			}
		}

		chosen := legs[best]
		if chosen.Estimated {
			result.Estimated = true
		}
		result.TotalDistanceMeters += chosen.DistanceMeters
		result.TotalDurationSeconds += chosen.DurationSeconds

		stop := ordered[best]
		clock = clock.Add(time.Duration(chosen.DurationSeconds * float64(time.Second)))
		stop.StopOrder = len(result.Stops)
		stop.EstimatedArrival = clock
		result.Stops = append(result.Stops, stop)

		clock = clock.Add(time.Duration(stop.EstimatedDurationMin) * time.Minute)
		current = models.NewGeoPoint(stop.Latitude, stop.Longitude)

		next := remaining[:0]
		for _, idx := range remaining {
			if idx != best {
				next = append(next, idx)
			}
		}
		remaining = next
	}
	return result
}

// Walk recomputes StopOrder and ETAs for an already-decided stop sequence.
// Used after manual reorders and stop cancellations, where the operator's
// order is preserved and only the arithmetic is redone.
func (s *Sequencer) Walk(ctx context.Context, stops []models.RouteStop, startLocation models.GeoPoint, startTime time.Time) SequenceResult {
	result := SequenceResult{Stops: make([]models.RouteStop, 0, len(stops))}
	current := startLocation
	clock := startTime

	for _, stop := range stops {
		to := models.NewGeoPoint(stop.Latitude, stop.Longitude)
		leg := s.leg(ctx, current, to)
		if leg.Estimated {
			result.Estimated = true
		}
		result.TotalDistanceMeters += leg.DistanceMeters
		result.TotalDurationSeconds += leg.DurationSeconds

		clock = clock.Add(time.Duration(leg.DurationSeconds * float64(time.Second)))
		stop.StopOrder = len(result.Stops)
		stop.EstimatedArrival = clock
		result.Stops = append(result.Stops, stop)

		clock = clock.Add(time.Duration(stop.EstimatedDurationMin) * time.Minute)
		current = to
	}
	return result
}
