package distance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"trip-route-service/internal/domain"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type osrmRouteResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	// Distance is in meters.
	Distance float64       `json:"distance"`
	Geometry *osrmGeometry `json:"geometry"`
}

type osrmGeometry struct {
	// Coordinates use the GeoJSON [lon, lat] convention.
	Coordinates [][]float64 `json:"coordinates"`
}

// routeURL builds a route request for one origin/destination pair.
// OSRM expects coordinates as lon,lat;lon,lat.
func (o *OSRMDistanceProvider) routeURL(origin, destination domain.Point, query url.Values) string {
	return fmt.Sprintf(
		"%s/route/v1/%s/%f,%f;%f,%f?%s",
		o.baseURL, o.profile,
		origin.Lon, origin.Lat,
		destination.Lon, destination.Lat,
		query.Encode(),
	)
}

// fetchRoute performs a single route request. There is no retry: one attempt
// with the client timeout either succeeds or the caller falls back.
func (o *OSRMDistanceProvider) fetchRoute(
	ctx context.Context,
	origin, destination domain.Point,
	query url.Values,
) (*osrmRoute, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, o.routeURL(origin, destination, query), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("route request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}

	var rr osrmRouteResponse
	if err := json.NewDecoder(resp.Body).Decode(&rr); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}

	if rr.Code != "Ok" {
		return nil, fmt.Errorf("osrm returned code %q", rr.Code)
	}
	if len(rr.Routes) == 0 {
		return nil, errors.New("osrm returned no routes")
	}

	return &rr.Routes[0], nil
}

func (o *OSRMDistanceProvider) fetchRouteDistance(
	ctx context.Context,
	origin, destination domain.Point,
) (float64, error) {
	query := url.Values{"overview": {"false"}}

	route, err := o.fetchRoute(ctx, origin, destination, query)
	if err != nil {
		return 0, err
	}

	return route.Distance / 1000, nil
}

func (o *OSRMDistanceProvider) fetchRouteGeometry(
	ctx context.Context,
	origin, destination domain.Point,
) ([]domain.Point, error) {
	query := url.Values{"overview": {"full"}, "geometries": {"geojson"}}

	route, err := o.fetchRoute(ctx, origin, destination, query)
	if err != nil {
		return nil, err
	}

	if route.Geometry == nil || len(route.Geometry.Coordinates) == 0 {
		return nil, errors.New("osrm returned no geometry")
	}

	// Reorder from the provider's (lon, lat) convention to (lat, lon).
	pts := make([]domain.Point, 0, len(route.Geometry.Coordinates))
	for _, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			return nil, fmt.Errorf("osrm returned malformed coordinate %v", c)
		}
		pts = append(pts, domain.Point{Lat: c[1], Lon: c[0]})
	}

	return pts, nil
}
