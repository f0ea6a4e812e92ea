package graph

import "math"

// Edge is an undirected weighted edge between two labeled vertices.
// (U,V) and (V,U) denote the same edge. A missing weight is represented
// as NaN so it can survive transit through the model and be reported by
// validation instead of crashing construction.
type Edge struct {
	U string
	V string
	W float64
}

// HasWeight reports whether the edge carries a usable weight.
func (e Edge) HasWeight() bool {
	return !math.IsNaN(e.W)
}

// Graph is the canonical in-memory representation: an ordered list of
// unique vertex labels plus a list of undirected edges. Insertion order
// of Vertices is preserved for label generation and default positioning
// but has no meaning for algorithms.
type Graph struct {
	Vertices []string
	Edges    []Edge
}

// Position is a 2D canvas coordinate for one vertex.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// New returns an empty graph with non-nil slices.
func New() Graph {
	return Graph{
		Vertices: make([]string, 0),
		Edges:    make([]Edge, 0),
	}
}

// Clone returns a full deep copy sharing no mutable substructure with g.
// Every snapshot taken for history or trace playback goes through here,
// so the rest of the system may treat snapshots as frozen.
func Clone(g Graph) Graph {
	out := Graph{
		Vertices: make([]string, len(g.Vertices)),
		Edges:    make([]Edge, len(g.Edges)),
	}
	copy(out.Vertices, g.Vertices)
	copy(out.Edges, g.Edges)
	return out
}

// ClonePositions deep-copies a label-to-position map.
func ClonePositions(positions map[string]Position) map[string]Position {
	out := make(map[string]Position, len(positions))
	for label, pos := range positions {
		out[label] = pos
	}
	return out
}

// HasVertex reports whether the label is present in g.Vertices.
func HasVertex(g Graph, label string) bool {
	for _, v := range g.Vertices {
		if v == label {
			return true
		}
	}
	return false
}

// HasEdge reports whether g contains an edge with the given endpoints,
// in either orientation, regardless of weight.
func HasEdge(g Graph, u, v string) bool {
	probe := Edge{U: u, V: v}
	for _, e := range g.Edges {
		if EdgesEqual(e, probe) {
			return true
		}
	}
	return false
}

// TotalWeight sums the weights of all edges with a usable weight.
func TotalWeight(g Graph) float64 {
	total := 0.0
	for _, e := range g.Edges {
		if e.HasWeight() {
			total += e.W
		}
	}
	return total
}
