package routing

import "math"

// ShortestPath runs Dijkstra's algorithm from start to end and returns the
// vertex path (start..end inclusive) with its total distance.
//
// The selection step is a linear scan over tentative distances, matching the
// O(V^2) formulation; it stops early once end is selected or no reachable
// vertex remains. On the complete graphs built from a distance matrix the
// direct edge is always optimal, but the full search is kept so the planner
// stays correct should a future distance source violate the triangle
// inequality.
//
// If end is unreachable the path is nil and the distance is +Inf.
func ShortestPath(g *Graph, start, end int) ([]int, float64) {
	n := g.NumVertices()

	dist := make([]float64, n)
	prev := make([]int, n)
	visited := make([]bool, n)
	for i := 0; i < n; i++ {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[start] = 0

	for {
		u := -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !visited[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}

		if u == -1 || u == end {
			break
		}
		visited[u] = true

		for _, nb := range g.adj[u] {
			if visited[nb.to] {
				continue
			}
			if alt := dist[u] + nb.weight; alt < dist[nb.to] {
				dist[nb.to] = alt
				prev[nb.to] = u
			}
		}
	}

	if math.IsInf(dist[end], 1) {
		return nil, dist[end]
	}

	// Walk predecessors backward from end, then reverse into path order.
	path := make([]int, 0, n)
	for u := end; u != -1; u = prev[u] {
		path = append(path, u)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, dist[end]
}
