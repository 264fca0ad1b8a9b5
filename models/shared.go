package models

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude], the
// order the routing upstream expects on the wire.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from latitude/longitude.
func NewGeoPoint(lat, lon float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

func (g GeoPoint) Lat() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[1]
}

func (g GeoPoint) Lon() float64 {
	if len(g.Coordinates) < 2 {
		return 0
	}
	return g.Coordinates[0]
}

// Valid reports whether the point carries usable coordinates.
func (g GeoPoint) Valid() bool {
	if g.Type != "Point" || len(g.Coordinates) < 2 {
		return false
	}
	lat, lon := g.Coordinates[1], g.Coordinates[0]
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Location pairs a display name and address with coordinates.
type Location struct {
	Name    string   `bson:"name,omitempty" json:"name,omitempty"`
	Address string   `bson:"address,omitempty" json:"address,omitempty"`
	Geo     GeoPoint `bson:"geo" json:"geo"`
}
