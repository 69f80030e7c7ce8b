package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Source records where a distance or geometry value came from, so callers
// and tests can tell a routed result from the closed-form fallback.
type Source string

const (
	SourceNetwork  Source = "network"
	SourceFallback Source = "fallback"
)

// Travel distance between two waypoints, in kilometers.
type DistanceResult struct {
	Km     float64
	Source Source
}

// Detailed travel path between two waypoints, ordered origin to destination.
type GeometryResult struct {
	Points []domain.Point
	Source Source
}

// Contract for resolving travel distance and path geometry between waypoints.
//
// Implementations must never surface external-service failures: they recover
// internally (great-circle distance, straight-line geometry) and report the
// recovery through Source. Errors are reserved for caller mistakes and
// context cancellation.
type DistanceProvider interface {
	// Return the driving distance between two waypoints.
	Distance(ctx context.Context, origin, destination domain.Point) (DistanceResult, error)
	// Return the driving path between two waypoints, endpoints included.
	Geometry(ctx context.Context, origin, destination domain.Point) (GeometryResult, error)
}
