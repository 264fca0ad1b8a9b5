package routing

import (
	"math"

	"hoofline/models"
)

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// FallbackLeg estimates a leg from straight-line distance at an assumed
// average speed. Used when the routing upstream is degraded.
func FallbackLeg(from, to models.GeoPoint, avgKmh float64) Leg {
	if avgKmh <= 0 {
		avgKmh = 40
	}
	km := HaversineKm(from.Lat(), from.Lon(), to.Lat(), to.Lon())
	return Leg{
		DistanceMeters:  km * 1000,
		DurationSeconds: km / avgKmh * 3600,
		Estimated:       true,
	}
}
