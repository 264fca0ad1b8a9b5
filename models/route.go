package models

import "time"

type RouteOrderStatus string

const (
	RouteStatusPending    RouteOrderStatus = "pending"
	RouteStatusConfirmed  RouteOrderStatus = "confirmed"
	RouteStatusInProgress RouteOrderStatus = "in_progress"
	RouteStatusCompleted  RouteOrderStatus = "completed"
	RouteStatusCancelled  RouteOrderStatus = "cancelled"
)

func (s RouteOrderStatus) Terminal() bool {
	return s == RouteStatusCompleted || s == RouteStatusCancelled
}

type RouteStopStatus string

const (
	StopStatusPending   RouteStopStatus = "pending"
	StopStatusCompleted RouteStopStatus = "completed"
	StopStatusSkipped   RouteStopStatus = "skipped"
	StopStatusProblem   RouteStopStatus = "problem"
)

type RouteOrderType string

const (
	RouteTypeCustomerRequested RouteOrderType = "customer_requested"
	RouteTypeProviderAnnounced RouteOrderType = "provider_announced"
)

// RouteStop is a single visit within a day's route. StopOrder values within
// one route are dense, zero-based and unique; reordering is atomic so a route
// is never observed with duplicate or gapped orders.
type RouteStop struct {
	ID                   string          `bson:"id" json:"id"`
	StopOrder            int             `bson:"stopOrder" json:"stopOrder"`
	LocationName         string          `bson:"locationName" json:"locationName"`
	Address              string          `bson:"address" json:"address"`
	Latitude             float64         `bson:"latitude" json:"latitude"`
	Longitude            float64         `bson:"longitude" json:"longitude"`
	EstimatedArrival     time.Time       `bson:"estimatedArrival" json:"estimatedArrival"`
	EstimatedDurationMin int             `bson:"estimatedDurationMin" json:"estimatedDurationMin"`
	Status               RouteStopStatus `bson:"status" json:"status"`
	Note                 string          `bson:"note,omitempty" json:"note,omitempty"`
	BookingID            string          `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	CreatedAt            time.Time       `bson:"createdAt" json:"createdAt"`
}

// RouteOrder is one provider's multi-stop itinerary for a single day.
type RouteOrder struct {
	ID         string           `bson:"id" json:"id"`
	ProviderID string           `bson:"providerId" json:"providerId"`
	Type       RouteOrderType   `bson:"type" json:"type"`
	Date       string           `bson:"date" json:"date"`
	Status     RouteOrderStatus `bson:"status" json:"status"`
	// Estimated is set when one or more legs fell back to straight-line
	// estimates because the routing upstream was degraded.
	Estimated bool        `bson:"estimated" json:"estimated"`
	Stops     []RouteStop `bson:"stops" json:"stops"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

func (r *RouteOrder) StopByID(stopID string) *RouteStop {
	for i := range r.Stops {
		if r.Stops[i].ID == stopID {
			return &r.Stops[i]
		}
	}
	return nil
}
