package routing

import (
	"context"

	"hoofline/models"
)

// Leg is the routed driving estimate between two points.
type Leg struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
	// Estimated is set when the value came from the straight-line fallback
	// rather than the routing upstream.
	Estimated bool `json:"estimated,omitempty"`
}

// RouteResult is the routed path through an ordered list of points.
type RouteResult struct {
	DistanceMeters  float64           `json:"distanceMeters"`
	DurationSeconds float64           `json:"durationSeconds"`
	Path            []models.GeoPoint `json:"path,omitempty"`
}

// Client wraps an external driving-directions provider. Implementations do no
// business logic: a non-OK upstream response or malformed payload is an
// error, never "no route".
type Client interface {
	// Leg estimates driving distance and duration from one point to another.
	Leg(ctx context.Context, from, to models.GeoPoint) (Leg, error)
	// Route estimates the full drive through an ordered list of points.
	Route(ctx context.Context, points []models.GeoPoint) (RouteResult, error)
}
