// Package routing holds the deterministic graph algorithms behind route
// planning: complete-graph construction from a distance matrix, Prim's
// minimum spanning tree, depth-first tour linearization, and Dijkstra
// shortest paths. Everything here is CPU-bound and allocation-local; one
// planning run owns its graph exclusively.
package routing

// Undirected weighted edge between two vertex indices.
type Edge struct {
	U, V   int
	Weight float64
}

type neighbor struct {
	to     int
	weight float64
}

// Undirected weighted graph over vertices 0..n-1, stored as adjacency lists.
type Graph struct {
	n   int
	adj [][]neighbor
}

func NewGraph(n int) *Graph {
	return &Graph{n: n, adj: make([][]neighbor, n)}
}

func (g *Graph) NumVertices() int { return g.n }

// AddEdge appends the edge to both endpoints' adjacency lists.
func (g *Graph) AddEdge(u, v int, weight float64) {
	g.adj[u] = append(g.adj[u], neighbor{to: v, weight: weight})
	g.adj[v] = append(g.adj[v], neighbor{to: u, weight: weight})
}

// Neighbors returns vertex u's adjacency list in insertion order.
func (g *Graph) Neighbors(u int) []Edge {
	out := make([]Edge, 0, len(g.adj[u]))
	for _, nb := range g.adj[u] {
		out = append(out, Edge{U: u, V: nb.to, Weight: nb.weight})
	}
	return out
}

// FromMatrix builds the complete graph over a symmetric distance matrix.
// Each unordered pair is added once (j > i), so no edge is stored twice.
func FromMatrix(matrix [][]float64) *Graph {
	g := NewGraph(len(matrix))
	for i := range matrix {
		for j := i + 1; j < len(matrix); j++ {
			g.AddEdge(i, j, matrix[i][j])
		}
	}
	return g
}
