package services

import (
	"context"
	"fmt"
	"sync"

	"trip-route-service/internal/domain"
	"trip-route-service/internal/platform/obs"
	"trip-route-service/internal/ports"
)

// Bounds concurrent distance lookups so a cold cache does not overwhelm the
// routing service.
const matrixWorkers = 5

type pairDistance struct {
	i, j int
	km   float64
	err  error
}

// BuildDistanceMatrix computes the full pairwise distance matrix for points.
//
// Every unordered pair is resolved independently through the provider, with
// bounded concurrency; each lookup carries its own timeout and falls back on
// its own, so one slow pair never blocks the rest. The result is symmetric
// with a zero diagonal and is read-only for the remainder of the run.
func BuildDistanceMatrix(
	ctx context.Context,
	points []domain.Point,
	provider ports.DistanceProvider,
) (_ [][]float64, err error) {
	defer obs.Time(ctx, "planner.BuildDistanceMatrix")(&err)

	n := len(points)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	sem := make(chan struct{}, matrixWorkers)
	results := make(chan pairDistance, n*(n-1)/2)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			wg.Add(1)
			go func(i, j int) {
				sem <- struct{}{}
				defer wg.Done()
				defer func() { <-sem }()

				res, e := provider.Distance(ctx, points[i], points[j])
				if e != nil {
					results <- pairDistance{i: i, j: j, err: fmt.Errorf(
						"build distance matrix: pair (%d,%d): %w", i, j, e,
					)}
					return
				}
				results <- pairDistance{i: i, j: j, km: res.Km}
			}(i, j)
		}
	}

	wg.Wait()
	close(results)

	for r := range results {
		if r.err != nil {
			if err == nil {
				err = r.err
			}
			continue
		}
		// Mirror each pair so matrix[i][j] == matrix[j][i] holds by construction.
		matrix[r.i][r.j] = r.km
		matrix[r.j][r.i] = r.km
	}
	if err != nil {
		return nil, err
	}

	return matrix, nil
}
