package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Occupying reports whether a booking in this status blocks a time slot.
// Cancelled bookings never block.
func (s BookingStatus) Occupying() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking is a customer appointment with a provider. Start/End are minutes
// from midnight on Date; End is derived from the service duration at
// creation. Location is the customer's coordinates frozen at booking time.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	ProviderID string        `bson:"providerId" json:"providerId"`
	CustomerID string        `bson:"customerId" json:"customerId"`
	ServiceID  string        `bson:"serviceId" json:"serviceId"`
	Date       string        `bson:"date" json:"date"` // "2006-01-02"
	Start      int           `bson:"start" json:"start"`
	End        int           `bson:"end" json:"end"`
	Status     BookingStatus `bson:"status" json:"status"`
	Location   *Location     `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
