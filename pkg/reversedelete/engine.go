package reversedelete

import (
	"fmt"
	"sort"

	"github.com/dd0wney/mstviz/pkg/graph"
)

// Run executes the Reverse-Delete MST algorithm over g and returns the
// full trace eagerly, one Step per decision.
//
// Reverse-Delete walks the edges heaviest-first and removes each edge
// unless doing so would disconnect the graph. Ties between equal
// weights are broken by input order (stable sort), which makes the
// trace a pure function of the input graph including its edge order.
//
// Precondition: the caller has confirmed the graph has zero validation
// errors. The engine does not re-validate; behavior on an invalid graph
// is undefined.
func Run(g graph.Graph) []Step {
	steps := make([]Step, 0)
	if len(g.Edges) == 0 {
		return steps
	}

	sorted := make([]graph.Edge, len(g.Edges))
	copy(sorted, g.Edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].W > sorted[j].W
	})

	working := graph.Clone(g)
	seq := 0

	emit := func(kind StepKind, edge graph.Edge, explanation string) {
		e := edge
		steps = append(steps, Step{
			Kind:        kind,
			Edge:        &e,
			Explanation: explanation,
			Snapshot:    graph.Clone(working),
			Seq:         seq,
		})
		seq++
	}

	first := sorted[0]
	emit(Consider, first, fmt.Sprintf(
		"Starting Reverse-Delete: %d edges sorted by weight, heaviest first. First up is %s-%s (weight %v).",
		len(sorted), first.U, first.V, first.W))

	for _, e := range sorted {
		// The edge may already be gone from the working graph. Given
		// unique-edge invariants this should not happen, but the engine
		// checks existence rather than assuming it.
		if !graph.HasEdge(working, e.U, e.V) {
			continue
		}

		emit(Consider, e, fmt.Sprintf(
			"Considering edge %s-%s (weight %v): can we remove it without disconnecting the graph?",
			e.U, e.V, e.W))

		tentative := graph.RemoveEdge(working, e)
		if !graph.IsConnected(tentative) {
			emit(Keep, e, fmt.Sprintf(
				"Keeping %s-%s: removing it would disconnect the graph, so it belongs to the MST.",
				e.U, e.V))
			continue
		}

		working = tentative
		emit(Delete, e, fmt.Sprintf(
			"Deleting %s-%s: the graph stays connected without it.",
			e.U, e.V))
	}

	steps = append(steps, Step{
		Kind: Complete,
		Explanation: fmt.Sprintf(
			"Done: the MST has %d edges with total weight %v.",
			len(working.Edges), graph.TotalWeight(working)),
		Snapshot: graph.Clone(working),
		Seq:      seq,
	})

	return steps
}
