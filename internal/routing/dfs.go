package routing

// DepthFirstOrder linearizes a spanning tree into a visiting order.
//
// Tree edges contribute adjacency in both directions in insertion order.
// The walk uses an explicit stack instead of recursion so call-stack depth
// never limits the input size; neighbors are pushed in reverse so the visit
// order matches the recursive formulation. The visited guard makes the walk
// safe even if the edge set is not actually a tree.
func DepthFirstOrder(tree []Edge, n, start int) []int {
	adj := make([][]int, n)
	for _, e := range tree {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)

	stack := make([]int, 0, n)
	stack = append(stack, start)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[u] {
			continue
		}
		visited[u] = true
		order = append(order, u)

		for i := len(adj[u]) - 1; i >= 0; i-- {
			if !visited[adj[u][i]] {
				stack = append(stack, adj[u][i])
			}
		}
	}

	return order
}
