package graph

import (
	"fmt"
	"sort"
)

// EdgesEqual reports whether two edges join the same pair of vertices,
// in either orientation. Weight is deliberately ignored: there is at
// most one edge per pair, so identity is the endpoint set.
func EdgesEqual(a, b Edge) bool {
	if a.U == b.U && a.V == b.V {
		return true
	}
	return a.U == b.V && a.V == b.U
}

// RemoveEdge returns a new graph with every edge equal (by EdgesEqual)
// to the given edge removed. The input graph is untouched.
func RemoveEdge(g Graph, edge Edge) Graph {
	out := Graph{
		Vertices: make([]string, len(g.Vertices)),
		Edges:    make([]Edge, 0, len(g.Edges)),
	}
	copy(out.Vertices, g.Vertices)
	for _, e := range g.Edges {
		if !EdgesEqual(e, edge) {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// NextVertexLabel generates a deterministic label for a new vertex:
// the letter following the alphabetically last single-character label,
// then A<count>-style labels once the alphabet is exhausted. An empty
// graph yields "A".
func NextVertexLabel(g Graph) string {
	singles := make([]string, 0, len(g.Vertices))
	for _, v := range g.Vertices {
		if len(v) == 1 {
			singles = append(singles, v)
		}
	}
	sort.Strings(singles)

	next := byte('A')
	if len(singles) > 0 {
		next = singles[len(singles)-1][0] + 1
	}
	if next <= 'Z' {
		return string(next)
	}
	return fmt.Sprintf("A%d", len(g.Vertices))
}
