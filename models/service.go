package models

// Service is a bookable offering owned by a provider. DurationMinutes sizes
// availability slots. RecommendedIntervalWeeks is the suggested gap between
// repeat visits (e.g. shoeing cycles) and is not used by the engine itself.
type Service struct {
	ID                       string  `bson:"id" json:"id"`
	ProviderID               string  `bson:"providerId" json:"providerId"`
	Name                     string  `bson:"name" json:"name"`
	DurationMinutes          int     `bson:"durationMinutes" json:"durationMinutes"`
	Price                    float64 `bson:"price" json:"price"`
	RecommendedIntervalWeeks int     `bson:"recommendedIntervalWeeks,omitempty" json:"recommendedIntervalWeeks,omitempty"`
}
