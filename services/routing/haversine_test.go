package routing

import (
	"math"
	"testing"

	"hoofline/models"
)

func TestHaversineKnownDistance(t *testing.T) {
	// Amsterdam Centraal to Utrecht Centraal is roughly 35 km
	got := HaversineKm(52.3791, 4.9003, 52.0894, 5.1101)
	if math.Abs(got-35.2) > 1.0 {
		t.Fatalf("distance = %.1f km, want about 35 km", got)
	}
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	if d := HaversineKm(52.0, 4.0, 52.0, 4.0); d != 0 {
		t.Fatalf("distance = %v, want 0", d)
	}
}

func TestFallbackLeg(t *testing.T) {
	from := models.NewGeoPoint(52.0, 4.0)
	to := models.NewGeoPoint(52.1, 4.0) // about 11.1 km due north

	leg := FallbackLeg(from, to, 40)

	if !leg.Estimated {
		t.Fatal("fallback legs must be flagged as estimated")
	}
	if math.Abs(leg.DistanceMeters-11120) > 200 {
		t.Fatalf("distance = %.0f m, want about 11120", leg.DistanceMeters)
	}
	wantSeconds := leg.DistanceMeters / 1000 / 40 * 3600
	if math.Abs(leg.DurationSeconds-wantSeconds) > 1 {
		t.Fatalf("duration = %.0f s, want %.0f", leg.DurationSeconds, wantSeconds)
	}
}
