package distance

import (
	"context"
	"log"
	"net/http"
	"time"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// DefaultBaseURL targets the public OSRM demo instance.
const DefaultBaseURL = "http://router.project-osrm.org"

// OSRMDistanceProvider implements DistanceProvider using the OSRM route API.
//
// It coordinates:
//   - Persistent distance caching (optional)
//   - External route calls with a bounded per-call timeout
//   - Silent recovery via haversine / straight-line fallbacks
//
// Every external failure — network error, non-2xx status, malformed or absent
// route data, timeout — is absorbed here: the caller always receives a value,
// tagged with where it came from. The provider is safe for concurrent use.
type OSRMDistanceProvider struct {
	session *http.Client
	baseURL string
	profile string
	cache   ports.DistanceCache
}

// NewOSRMDistanceProvider builds a provider against baseURL (the public OSRM
// instance when empty). cache may be nil to disable cross-request caching.
func NewOSRMDistanceProvider(baseURL string, cache ports.DistanceCache) *OSRMDistanceProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &OSRMDistanceProvider{
		session: &http.Client{Timeout: 5 * time.Second},
		baseURL: baseURL,
		profile: "driving",
		cache:   cache,
	}
}

// Distance returns the driving distance between two waypoints in kilometers.
// Cached values are network-sourced by definition; fallback estimates are
// never cached so a recovered routing service takes over again immediately.
func (o *OSRMDistanceProvider) Distance(
	ctx context.Context,
	origin, destination domain.Point,
) (ports.DistanceResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.DistanceResult{}, err
	}

	if o.cache != nil {
		km, ok, err := o.cache.Get(ctx, origin, destination)
		if err != nil {
			log.Printf("distance cache read failed: %v", err)
		} else if ok {
			return ports.DistanceResult{Km: km, Source: ports.SourceNetwork}, nil
		}
	}

	km, err := o.fetchRouteDistance(ctx, origin, destination)
	if err != nil {
		log.Printf(
			"osrm distance fallback: origin=(%.5f,%.5f) dest=(%.5f,%.5f) err=%v",
			origin.Lat, origin.Lon, destination.Lat, destination.Lon, err,
		)
		return ports.DistanceResult{
			Km:     domain.Haversine(origin, destination),
			Source: ports.SourceFallback,
		}, nil
	}

	if o.cache != nil {
		if err := o.cache.Put(ctx, origin, destination, km); err != nil {
			log.Printf("distance cache write failed: %v", err)
		}
	}

	return ports.DistanceResult{Km: km, Source: ports.SourceNetwork}, nil
}

// Geometry returns the driving path between two waypoints. On any failure it
// degrades to the straight line [origin, destination].
func (o *OSRMDistanceProvider) Geometry(
	ctx context.Context,
	origin, destination domain.Point,
) (ports.GeometryResult, error) {
	if err := ctx.Err(); err != nil {
		return ports.GeometryResult{}, err
	}

	pts, err := o.fetchRouteGeometry(ctx, origin, destination)
	if err != nil {
		log.Printf(
			"osrm geometry fallback: origin=(%.5f,%.5f) dest=(%.5f,%.5f) err=%v",
			origin.Lat, origin.Lon, destination.Lat, destination.Lon, err,
		)
		return ports.GeometryResult{
			Points: []domain.Point{origin, destination},
			Source: ports.SourceFallback,
		}, nil
	}

	return ports.GeometryResult{Points: pts, Source: ports.SourceNetwork}, nil
}
