package routing

import (
	"errors"
	"math"
)

// ErrDisconnected reports that no spanning tree covers every vertex.
// For the complete graphs built by this service it indicates a broken
// invariant upstream, so callers abort the run instead of returning a
// partial plan.
var ErrDisconnected = errors.New("minimum spanning tree: graph is not connected")

// MinimumSpanningTree computes an MST with Prim's nearest-fringe scan.
//
// Starting from vertex 0, each round picks the minimum-weight edge that
// crosses from the visited set to an unvisited vertex. Ties keep the first
// edge found, so the result is deterministic for a fixed construction order.
// The scan is O(V^3) with no priority queue, which is fine at the intended
// scale of tens of waypoints.
func MinimumSpanningTree(g *Graph) ([]Edge, error) {
	n := g.NumVertices()
	if n == 0 {
		return []Edge{}, nil
	}

	visited := make([]bool, n)
	visited[0] = true
	inTree := 1

	tree := make([]Edge, 0, n-1)

	for inTree < n {
		best := Edge{U: -1}
		bestWeight := math.Inf(1)

		for u := 0; u < n; u++ {
			if !visited[u] {
				continue
			}
			for _, nb := range g.adj[u] {
				if !visited[nb.to] && nb.weight < bestWeight {
					bestWeight = nb.weight
					best = Edge{U: u, V: nb.to, Weight: nb.weight}
				}
			}
		}

		// No edge crosses the fringe: halt rather than loop forever.
		if best.U == -1 {
			return nil, ErrDisconnected
		}

		tree = append(tree, best)
		visited[best.V] = true
		inTree++
	}

	return tree, nil
}
