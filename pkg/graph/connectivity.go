package graph

// IsConnected reports whether every vertex is reachable from the first
// one via undirected edges. Graphs with zero or one vertices are
// trivially connected.
//
// Uses depth-first search over an adjacency map. Edges that reference
// vertices absent from g.Vertices are tolerated: the unknown endpoint
// is simply never counted as visited, so a malformed graph degrades to
// "not connected" rather than a crash.
func IsConnected(g Graph) bool {
	if len(g.Vertices) <= 1 {
		return true
	}

	known := make(map[string]bool, len(g.Vertices))
	for _, v := range g.Vertices {
		known[v] = true
	}

	adjacency := make(map[string][]string, len(g.Vertices))
	for _, e := range g.Edges {
		adjacency[e.U] = append(adjacency[e.U], e.V)
		adjacency[e.V] = append(adjacency[e.V], e.U)
	}

	visited := make(map[string]bool, len(g.Vertices))
	stack := []string{g.Vertices[0]}
	visited[g.Vertices[0]] = true

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, neighbor := range adjacency[current] {
			if !known[neighbor] || visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			stack = append(stack, neighbor)
		}
	}

	return len(visited) == len(g.Vertices)
}
