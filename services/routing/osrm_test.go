package routing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hoofline/models"
	"hoofline/utils"
)

const osrmOKBody = `{
	"code": "Ok",
	"routes": [{
		"distance": 12345.6,
		"duration": 1111.2,
		"geometry": {"coordinates": [[4.0, 52.0], [4.1, 52.1]]}
	}]
}`

func TestOSRMLegParsesResponse(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, osrmOKBody)
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	leg, err := client.Leg(context.Background(), models.NewGeoPoint(52.0, 4.0), models.NewGeoPoint(52.1, 4.1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if leg.DistanceMeters != 12345.6 || leg.DurationSeconds != 1111.2 {
		t.Fatalf("leg = %+v, want distance 12345.6 duration 1111.2", leg)
	}
	// OSRM wants lon,lat pairs in the path
	if !strings.Contains(gotPath, "4.000000,52.000000;4.100000,52.100000") {
		t.Fatalf("request path %q does not carry lon,lat coordinates", gotPath)
	}
	if !strings.HasPrefix(gotPath, "/route/v1/driving/") {
		t.Fatalf("request path %q not under /route/v1/driving", gotPath)
	}
}

func TestOSRMRouteNonOkCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"code": "NoRoute", "routes": []}`)
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	_, err := client.Leg(context.Background(), models.NewGeoPoint(52.0, 4.0), models.NewGeoPoint(52.1, 4.1))
	var ue *utils.UpstreamDegradedError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want an upstream error", err)
	}
}

func TestOSRMRetriesTransientFailure(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, osrmOKBody)
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	leg, err := client.Leg(context.Background(), models.NewGeoPoint(52.0, 4.0), models.NewGeoPoint(52.1, 4.1))
	if err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("upstream called %d times, want 2", calls)
	}
	if leg.DurationSeconds != 1111.2 {
		t.Fatalf("leg duration = %v, want 1111.2", leg.DurationSeconds)
	}
}

func TestOSRMDoesNotRetryClientError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewOSRMClient(srv.URL, 2*time.Second)
	_, err := client.Leg(context.Background(), models.NewGeoPoint(52.0, 4.0), models.NewGeoPoint(52.1, 4.1))
	if err == nil {
		t.Fatal("expected an error")
	}
	if calls != 1 {
		t.Fatalf("upstream called %d times, want 1 for a 400", calls)
	}
}

func TestOSRMRouteRejectsInvalidInput(t *testing.T) {
	client := NewOSRMClient("http://127.0.0.1:0", time.Second)

	if _, err := client.Route(context.Background(), []models.GeoPoint{models.NewGeoPoint(52.0, 4.0)}); err == nil {
		t.Fatal("a single point must be rejected before any upstream call")
	}
	points := []models.GeoPoint{models.NewGeoPoint(52.0, 4.0), models.NewGeoPoint(120.0, 4.0)}
	if _, err := client.Route(context.Background(), points); err == nil {
		t.Fatal("out-of-range coordinates must be rejected before any upstream call")
	}
}
