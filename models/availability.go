package models

// UnavailableReason explains why a candidate slot cannot be booked.
type UnavailableReason string

const (
	ReasonBooked     UnavailableReason = "booked"
	ReasonPast       UnavailableReason = "past"
	ReasonTravelTime UnavailableReason = "travel-time"
)

// Slot is one candidate appointment window. Start/End are minutes from
// midnight; End - Start always equals the requested service duration.
type Slot struct {
	Start     int               `json:"start"`
	End       int               `json:"end"`
	Available bool              `json:"available"`
	Reason    UnavailableReason `json:"unavailableReason,omitempty"`
}

// DayAvailability is the bookable view of one provider day.
type DayAvailability struct {
	Date      string `json:"date"`
	IsClosed  bool   `json:"isClosed"`
	OpenStart int    `json:"openStart,omitempty"`
	OpenEnd   int    `json:"openEnd,omitempty"`
	Slots     []Slot `json:"slots"`
	// RoutingDegraded is set when travel-feasibility checks failed closed
	// because the routing upstream was unavailable. It lets callers tell
	// "routing degraded" apart from "fully booked" and "closed".
	RoutingDegraded bool `json:"routingDegraded,omitempty"`
}

// WeekAvailability is seven consecutive DayAvailability results.
type WeekAvailability struct {
	ProviderID string            `json:"providerId"`
	StartDate  string            `json:"startDate"`
	Days       []DayAvailability `json:"days"`
}
