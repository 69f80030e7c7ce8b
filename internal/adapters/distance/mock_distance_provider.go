package distance

import (
	"context"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/ports"
)

// MockDistanceProvider is a deterministic, network-free DistanceProvider for
// tests. It mirrors the offline behavior of the OSRM adapter: great-circle
// distances and straight-line geometry, tagged as fallback values. Individual
// calls can be overridden through the function fields.
type MockDistanceProvider struct {
	DistanceFn func(ctx context.Context, origin, destination domain.Point) (ports.DistanceResult, error)
	GeometryFn func(ctx context.Context, origin, destination domain.Point) (ports.GeometryResult, error)
}

func NewMockDistanceProvider() *MockDistanceProvider {
	return &MockDistanceProvider{}
}

func (p *MockDistanceProvider) Distance(
	ctx context.Context,
	origin, destination domain.Point,
) (ports.DistanceResult, error) {
	if p.DistanceFn != nil {
		return p.DistanceFn(ctx, origin, destination)
	}
	return ports.DistanceResult{
		Km:     domain.Haversine(origin, destination),
		Source: ports.SourceFallback,
	}, nil
}

func (p *MockDistanceProvider) Geometry(
	ctx context.Context,
	origin, destination domain.Point,
) (ports.GeometryResult, error) {
	if p.GeometryFn != nil {
		return p.GeometryFn(ctx, origin, destination)
	}
	return ports.GeometryResult{
		Points: []domain.Point{origin, destination},
		Source: ports.SourceFallback,
	}, nil
}
