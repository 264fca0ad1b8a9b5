package models

import "time"

// Provider is the minimal provider view the engine needs: identity, the base
// location travel legs anchor to, and the IANA timezone its wall-clock hours
// are expressed in.
type Provider struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	ServiceType  string    `bson:"serviceType" json:"serviceType"` // e.g. "farrier", "vet", "instructor"
	BaseLocation Location  `bson:"baseLocation" json:"baseLocation"`
	Timezone     string    `bson:"timezone" json:"timezone"` // e.g. "Europe/Amsterdam"
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
