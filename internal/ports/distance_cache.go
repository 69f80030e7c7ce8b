package ports

import (
	"context"

	"trip-route-service/internal/domain"
)

// Optional cross-request cache for routed distances.
//
// Only network-sourced values belong in the cache; fallback estimates are
// cheap to recompute and must not mask a recovered routing service.
type DistanceCache interface {
	// Get returns the cached distance in kilometers and whether it was present.
	Get(ctx context.Context, origin, destination domain.Point) (float64, bool, error)
	// Put stores a routed distance for an origin/destination pair.
	Put(ctx context.Context, origin, destination domain.Point, km float64) error
}
