package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
	"trip-route-service/internal/routing"
)

// Bounds concurrent geometry lookups during segment fetching.
const geometryWorkers = 5

// PlanRoute computes a visiting order and travel path over the given waypoints.
//
// Pipeline: pairwise distance matrix -> complete weighted graph -> Prim MST ->
// depth-first linearization -> per-hop Dijkstra distance accumulation, with
// road geometry fetched per hop for rendering. The MST+DFS ordering is a
// heuristic tour, not an optimal one; the design prioritizes determinism and
// simplicity over optimality.
//
// A single waypoint yields the degenerate plan (order [0], zero distance, no
// segments). Empty input is a caller error: the boundary must reject it first.
func PlanRoute(
	ctx context.Context,
	points []domain.Point,
	provider ports.DistanceProvider,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "planner.PlanRoute")(&err)

	if len(points) == 0 {
		return nil, errors.New("plan route: at least one waypoint is required")
	}

	if len(points) < 2 {
		return &domain.RoutePlan{
			VisitingOrder:   []int{0},
			RouteCoords:     []domain.Point{points[0]},
			TotalDistanceKm: 0,
			RoadSegments:    [][]domain.Point{},
		}, nil
	}

	matrix, err := BuildDistanceMatrix(ctx, points, provider)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	graph := routing.FromMatrix(matrix)

	tree, err := routing.MinimumSpanningTree(graph)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	order := routing.DepthFirstOrder(tree, len(points), 0)

	// Distance accumulation is CPU-only and the geometry fetches are network
	// calls over immutable inputs, so the two run concurrently.
	var total float64
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < len(order)-1; i++ {
			_, hop := routing.ShortestPath(graph, order[i], order[i+1])
			total += hop
		}
	}()

	segments := make([][]domain.Point, len(order)-1)
	segErrs := make(chan error, len(order)-1)
	sem := make(chan struct{}, geometryWorkers)

	for i := 0; i < len(order)-1; i++ {
		wg.Add(1)
		go func(i int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			res, e := provider.Geometry(ctx, points[order[i]], points[order[i+1]])
			if e != nil {
				segErrs <- fmt.Errorf("plan route: segment %d geometry: %w", i, e)
				return
			}
			segments[i] = res.Points
		}(i)
	}

	wg.Wait()
	close(segErrs)
	if e := <-segErrs; e != nil {
		return nil, e
	}

	routeCoords := make([]domain.Point, len(order))
	for i, v := range order {
		routeCoords[i] = points[v]
	}

	return &domain.RoutePlan{
		VisitingOrder:   order,
		RouteCoords:     routeCoords,
		TotalDistanceKm: math.Round(total*100) / 100,
		RoadSegments:    segments,
	}, nil
}
