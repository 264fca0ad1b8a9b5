package routeRepo

import "hoofline/models"

// RouteRepository provides access to route orders. Stops are embedded in the
// route document, so stop reordering is a single-document replace and the
// dense StopOrder invariant is never observable half-applied.
type RouteRepository interface {
	GetByID(routeID string) (*models.RouteOrder, error)
	CreateRoute(route *models.RouteOrder) error
	// ReplaceStops atomically swaps the stop list, the estimated flag and the
	// updatedAt timestamp of an existing route.
	ReplaceStops(routeID string, stops []models.RouteStop, estimated bool) error
	UpdateStatus(routeID string, status models.RouteOrderStatus) error
	UpdateStopStatus(routeID, stopID string, status models.RouteStopStatus, note string) error
}
