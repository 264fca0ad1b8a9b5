package routing

import (
	"context"
	"fmt"
	"sync"

	"hoofline/models"
	"hoofline/utils"
)

// MockPair is one configured leg for the mock client.
type MockPair struct {
	FromLat, FromLon float64
	ToLat, ToLon     float64
	Meters           float64
	Seconds          float64
}

// MockClient serves configured legs and records call counts. Used in tests
// and local development without a routing upstream. Safe for concurrent use.
type MockClient struct {
	legs map[string]Leg
	Err  error

	mu    sync.Mutex
	calls int
}

func NewMockClient(pairs []MockPair) *MockClient {
	legs := make(map[string]Leg, len(pairs))
	for _, p := range pairs {
		key := mockKey(p.FromLat, p.FromLon, p.ToLat, p.ToLon)
		legs[key] = Leg{DistanceMeters: p.Meters, DurationSeconds: p.Seconds}
	}
	return &MockClient{legs: legs}
}

func mockKey(fromLat, fromLon, toLat, toLon float64) string {
	return fmt.Sprintf("%.4f,%.4f|%.4f,%.4f", fromLat, fromLon, toLat, toLon)
}

// CallCount reports how many leg lookups the mock has served.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockClient) Leg(_ context.Context, from, to models.GeoPoint) (Leg, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.Err != nil {
		return Leg{}, m.Err
	}
	key := mockKey(from.Lat(), from.Lon(), to.Lat(), to.Lon())
	leg, ok := m.legs[key]
	if !ok {
		return Leg{}, &utils.UpstreamDegradedError{Op: "leg", Err: fmt.Errorf("no mock leg for %s", key)}
	}
	return leg, nil
}

func (m *MockClient) Route(ctx context.Context, points []models.GeoPoint) (RouteResult, error) {
	var total RouteResult
	for i := 0; i+1 < len(points); i++ {
		leg, err := m.Leg(ctx, points[i], points[i+1])
		if err != nil {
			return RouteResult{}, err
		}
		total.DistanceMeters += leg.DistanceMeters
		total.DurationSeconds += leg.DurationSeconds
	}
	total.Path = points
	return total, nil
}
