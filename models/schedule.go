package models

// WeeklyHours is one provider's recurring hours for a single weekday.
// Start/End are minutes from midnight in the provider's local time
// (e.g. 540 for 9:00 AM). When IsClosed is false, Start < End.
type WeeklyHours struct {
	ProviderID string `bson:"providerId" json:"providerId"`
	Weekday    int    `bson:"weekday" json:"weekday"` // 0 = Sunday .. 6 = Saturday
	IsClosed   bool   `bson:"isClosed" json:"isClosed"`
	Start      int    `bson:"start" json:"start"`
	End        int    `bson:"end" json:"end"`
}

// DateException overrides the weekly hours for exactly one date. At most one
// exception exists per (provider, date); it always wins over the template,
// even when it opens fewer or different hours.
type DateException struct {
	ProviderID   string    `bson:"providerId" json:"providerId"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	IsClosed     bool      `bson:"isClosed" json:"isClosed"`
	Start        int       `bson:"start,omitempty" json:"start,omitempty"`
	End          int       `bson:"end,omitempty" json:"end,omitempty"`
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	// WorkLocation anchors travel legs on days the provider works away from
	// their base (e.g. a yard day at a livery stable).
	WorkLocation *Location `bson:"workLocation,omitempty" json:"workLocation,omitempty"`
}

// DaySchedule is the effective open interval for one provider on one date
// after exception override.
type DaySchedule struct {
	Date      string   `json:"date"`
	IsClosed  bool     `json:"isClosed"`
	OpenStart int      `json:"openStart"`
	OpenEnd   int      `json:"openEnd"`
	Location  Location `json:"location"`
}
