package routeplan

import (
	"context"
	"fmt"
	"time"

	routeRepo "hoofline/database/repository/route"
	scheduleRepo "hoofline/database/repository/schedule"
	"hoofline/models"
	"hoofline/utils"

	"github.com/google/uuid"
)

// StopInput describes one requested visit before sequencing.
type StopInput struct {
	LocationName         string  `json:"locationName"`
	Address              string  `json:"address"`
	Latitude             float64 `json:"latitude" binding:"required"`
	Longitude            float64 `json:"longitude" binding:"required"`
	EstimatedDurationMin int     `json:"estimatedDurationMin"`
	BookingID            string  `json:"bookingId,omitempty"`
}

// Service creates and maintains route orders: sequencing at creation, manual
// reorder, and individual stop cancellation, each persisting the stop list
// atomically so the dense StopOrder invariant always holds.
type Service struct {
	RouteRepo    routeRepo.RouteRepository
	ScheduleRepo scheduleRepo.ScheduleRepository
	Sequencer    *Sequencer
}

func validStopCoords(in StopInput) bool {
	return in.Latitude >= -90 && in.Latitude <= 90 && in.Longitude >= -180 && in.Longitude <= 180
}

// CreateRoute sequences the requested stops from the provider's base at
// startTime and persists the new route order. Routing degradation produces an
// "estimated" route, never an error.
func (s *Service) CreateRoute(ctx context.Context, providerID string, routeType models.RouteOrderType, date string, startTime time.Time, inputs []StopInput) (*models.RouteOrder, error) {
	if len(inputs) == 0 {
		return nil, utils.NewValidationError("stops", "at least one stop is required")
	}
	if routeType != models.RouteTypeCustomerRequested && routeType != models.RouteTypeProviderAnnounced {
		return nil, utils.NewValidationError("type", fmt.Sprintf("unknown route type %q", routeType))
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, utils.NewValidationError("date", fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date))
	}
	for i, in := range inputs {
		if !validStopCoords(in) {
			return nil, utils.NewValidationError("stops", fmt.Sprintf("stop %d has coordinates out of range", i))
		}
	}

	provider, err := s.ScheduleRepo.GetProviderByID(providerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stops := make([]models.RouteStop, len(inputs))
	for i, in := range inputs {
		stops[i] = models.RouteStop{
			ID:                   uuid.New().String(),
			LocationName:         in.LocationName,
			Address:              in.Address,
			Latitude:             in.Latitude,
			Longitude:            in.Longitude,
			EstimatedDurationMin: in.EstimatedDurationMin,
			Status:               models.StopStatusPending,
			BookingID:            in.BookingID,
			// Preserve request order as creation order for tie-breaking.
			CreatedAt: now.Add(time.Duration(i) * time.Millisecond),
		}
	}

	seq := s.Sequencer.Sequence(ctx, stops, provider.BaseLocation.Geo, startTime)

	route := &models.RouteOrder{
		ID:         uuid.New().String(),
		ProviderID: providerID,
		Type:       routeType,
		Date:       date,
		Status:     models.RouteStatusPending,
		Estimated:  seq.Estimated,
		Stops:      seq.Stops,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.RouteRepo.CreateRoute(route); err != nil {
		return nil, err
	}
	return route, nil
}

// ReorderStops applies an operator-specified stop order. The order must be a
// permutation of the route's current stops; ETAs are recomputed downstream
// and the whole stop list is swapped in one write.
func (s *Service) ReorderStops(ctx context.Context, routeID string, orderedStopIDs []string, startTime time.Time) (*models.RouteOrder, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	if route.Status.Terminal() {
		return nil, utils.NewConflictError(fmt.Sprintf("route %s is %s and cannot be reordered", routeID, route.Status))
	}
	if len(orderedStopIDs) != len(route.Stops) {
		return nil, utils.NewValidationError("stopIds", fmt.Sprintf("expected %d stop ids, got %d", len(route.Stops), len(orderedStopIDs)))
	}

	reordered := make([]models.RouteStop, 0, len(route.Stops))
	seen := make(map[string]bool, len(orderedStopIDs))
	for _, id := range orderedStopIDs {
		if seen[id] {
			return nil, utils.NewValidationError("stopIds", fmt.Sprintf("duplicate stop id %s", id))
		}
		seen[id] = true
		stop := route.StopByID(id)
		if stop == nil {
			return nil, utils.NewNotFoundError("route stop", routeID+"/"+id)
		}
		reordered = append(reordered, *stop)
	}

	provider, err := s.ScheduleRepo.GetProviderByID(route.ProviderID)
	if err != nil {
		return nil, err
	}

	seq := s.Sequencer.Walk(ctx, reordered, provider.BaseLocation.Geo, startTime)
	if err := s.RouteRepo.ReplaceStops(routeID, seq.Stops, seq.Estimated); err != nil {
		return nil, err
	}
	route.Stops = seq.Stops
	route.Estimated = seq.Estimated
	return route, nil
}

// CancelStop removes one stop from the itinerary, re-packs StopOrder densely
// and recomputes downstream ETAs. The underlying customer booking, if any, is
// untouched; cancelling it is a separate lifecycle transition.
func (s *Service) CancelStop(ctx context.Context, routeID, stopID string, startTime time.Time) (*models.RouteOrder, error) {
	route, err := s.RouteRepo.GetByID(routeID)
	if err != nil {
		return nil, err
	}
	if route.Status.Terminal() {
		return nil, utils.NewConflictError(fmt.Sprintf("route %s is %s and cannot be modified", routeID, route.Status))
	}
	if route.StopByID(stopID) == nil {
		return nil, utils.NewNotFoundError("route stop", routeID+"/"+stopID)
	}

	kept := make([]models.RouteStop, 0, len(route.Stops)-1)
	for _, stop := range route.Stops {
		if stop.ID != stopID {
			kept = append(kept, stop)
		}
	}

	provider, err := s.ScheduleRepo.GetProviderByID(route.ProviderID)
	if err != nil {
		return nil, err
	}

	seq := s.Sequencer.Walk(ctx, kept, provider.BaseLocation.Geo, startTime)
	if err := s.RouteRepo.ReplaceStops(routeID, seq.Stops, seq.Estimated); err != nil {
		return nil, err
	}
	route.Stops = seq.Stops
	route.Estimated = seq.Estimated
	return route, nil
}
