package validation

import (
	"fmt"

	"github.com/dd0wney/mstviz/pkg/graph"
)

// Validate runs the fixed battery of structural checks over a graph and
// returns every problem found, in check order. It never mutates the
// graph and is deterministic: the same input always yields the same
// ordered result.
//
// Check order:
//  1. empty vertex set (returns immediately if so)
//  2. duplicate edges
//  3. self-loops
//  4. missing / negative weights
//  5. dangling endpoint references
//  6. connectivity, only when checks 2-5 found nothing (connectivity
//     results are meaningless on a malformed graph)
func Validate(g graph.Graph) []ValidationError {
	errors := make([]ValidationError, 0)

	if len(g.Vertices) == 0 {
		errors = append(errors, ValidationError{
			Kind:    Disconnected,
			Message: "graph has no vertices",
		})
		return errors
	}

	errors = append(errors, checkDuplicateEdges(g)...)
	errors = append(errors, checkSelfLoops(g)...)
	errors = append(errors, checkWeights(g)...)
	errors = append(errors, checkDanglingReferences(g)...)

	if len(errors) == 0 && !graph.IsConnected(g) {
		errors = append(errors, ValidationError{
			Kind:    Disconnected,
			Message: "graph is not connected: every vertex must be reachable from every other",
		})
	}

	return errors
}

// checkDuplicateEdges flags every repeat occurrence of an endpoint pair.
// The first occurrence of a pair is never flagged; each later collision
// is reported once per occurrence.
func checkDuplicateEdges(g graph.Graph) []ValidationError {
	errors := make([]ValidationError, 0)
	seen := make(map[[2]string]bool, len(g.Edges))

	for i := range g.Edges {
		e := g.Edges[i]
		if seen[[2]string{e.U, e.V}] || seen[[2]string{e.V, e.U}] {
			edge := e
			errors = append(errors, ValidationError{
				Kind:    DuplicateEdge,
				Message: fmt.Sprintf("duplicate edge %s-%s: only one edge per vertex pair is allowed", e.U, e.V),
				Edge:    &edge,
			})
			continue
		}
		seen[[2]string{e.U, e.V}] = true
	}

	return errors
}

func checkSelfLoops(g graph.Graph) []ValidationError {
	errors := make([]ValidationError, 0)
	for i := range g.Edges {
		e := g.Edges[i]
		if e.U == e.V {
			edge := e
			errors = append(errors, ValidationError{
				Kind:    SelfLoop,
				Message: fmt.Sprintf("edge %s-%s is a self-loop", e.U, e.V),
				Edge:    &edge,
			})
		}
	}
	return errors
}

// checkWeights reports a missing (NaN) weight or a negative weight,
// mutually exclusive per edge.
func checkWeights(g graph.Graph) []ValidationError {
	errors := make([]ValidationError, 0)
	for i := range g.Edges {
		e := g.Edges[i]
		edge := e
		if !e.HasWeight() {
			errors = append(errors, ValidationError{
				Kind:    MissingWeight,
				Message: fmt.Sprintf("edge %s-%s has no weight", e.U, e.V),
				Edge:    &edge,
			})
			continue
		}
		if e.W < 0 {
			errors = append(errors, ValidationError{
				Kind:    NegativeWeight,
				Message: fmt.Sprintf("edge %s-%s has negative weight %v", e.U, e.V, e.W),
				Edge:    &edge,
			})
		}
	}
	return errors
}

func checkDanglingReferences(g graph.Graph) []ValidationError {
	errors := make([]ValidationError, 0)
	known := make(map[string]bool, len(g.Vertices))
	for _, v := range g.Vertices {
		known[v] = true
	}

	for i := range g.Edges {
		e := g.Edges[i]
		for _, endpoint := range []string{e.U, e.V} {
			if !known[endpoint] {
				edge := e
				errors = append(errors, ValidationError{
					Kind:    DanglingReference,
					Message: fmt.Sprintf("edge %s-%s references unknown vertex %q", e.U, e.V, endpoint),
					Edge:    &edge,
					Vertex:  endpoint,
				})
			}
		}
	}

	return errors
}
