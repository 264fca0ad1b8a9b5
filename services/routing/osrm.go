package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"hoofline/models"
	"hoofline/utils"
)

// OSRMClient implements Client against an OSRM-compatible HTTP endpoint.
// Coordinates go on the wire as lon,lat; callers always pass GeoJSON points
// so the conversion lives here and nowhere else. Safe for concurrent use.
type OSRMClient struct {
	session *http.Client
	baseURL string
	profile string
}

// NewOSRMClient builds a routing client with a hard per-call timeout.
func NewOSRMClient(baseURL string, timeout time.Duration) *OSRMClient {
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &OSRMClient{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		profile: "driving",
	}
}

// osrmResponse mirrors the subset of the OSRM route response we consume.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (o *OSRMClient) routeURL(points []models.GeoPoint) string {
	coords := make([]string, len(points))
	for i, p := range points {
		coords[i] = fmt.Sprintf("%f,%f", p.Lon(), p.Lat())
	}
	return fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=geojson",
		o.baseURL, o.profile, strings.Join(coords, ";"))
}

// Route estimates the full drive through an ordered list of points.
func (o *OSRMClient) Route(ctx context.Context, points []models.GeoPoint) (RouteResult, error) {
	if len(points) < 2 {
		return RouteResult{}, fmt.Errorf("route requires at least two points, got %d", len(points))
	}
	for i, p := range points {
		if !p.Valid() {
			return RouteResult{}, fmt.Errorf("route point %d has invalid coordinates", i)
		}
	}

	resp, err := o.doWithRetry(ctx, o.routeURL(points))
	if err != nil {
		return RouteResult{}, &utils.UpstreamDegradedError{Op: "route", Err: err}
	}
	defer resp.Body.Close()

	var payload osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return RouteResult{}, &utils.UpstreamDegradedError{Op: "route", Err: fmt.Errorf("decode response: %w", err)}
	}
	if payload.Code != "Ok" || len(payload.Routes) == 0 {
		return RouteResult{}, &utils.UpstreamDegradedError{Op: "route", Err: fmt.Errorf("upstream code %q with %d routes", payload.Code, len(payload.Routes))}
	}

	best := payload.Routes[0]
	result := RouteResult{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
	}
	for _, c := range best.Geometry.Coordinates {
		if len(c) >= 2 {
			result.Path = append(result.Path, models.NewGeoPoint(c[1], c[0]))
		}
	}
	return result, nil
}

// Leg estimates driving distance and duration between two points.
func (o *OSRMClient) Leg(ctx context.Context, from, to models.GeoPoint) (Leg, error) {
	result, err := o.Route(ctx, []models.GeoPoint{from, to})
	if err != nil {
		return Leg{}, err
	}
	return Leg{
		DistanceMeters:  result.DistanceMeters,
		DurationSeconds: result.DurationSeconds,
	}, nil
}
