package reversedelete

import "github.com/dd0wney/mstviz/pkg/graph"

// StepKind categorizes one entry of an algorithm trace.
type StepKind int

const (
	// Consider marks an edge as the current candidate, before any decision.
	Consider StepKind = iota
	// Keep records that removing the edge would disconnect the graph.
	Keep
	// Delete records that the edge was redundant and has been removed.
	Delete
	// Complete is the single terminal step of every trace.
	Complete
)

// String returns the string representation of a step kind.
func (k StepKind) String() string {
	switch k {
	case Consider:
		return "consider"
	case Keep:
		return "keep"
	case Delete:
		return "delete"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Step is one immutable entry of a trace. Snapshot is a frozen deep copy
// of the working graph after this step's effect; callers may hold it
// indefinitely. Edge is nil on the terminal Complete step.
type Step struct {
	Kind        StepKind
	Edge        *graph.Edge
	Explanation string
	Snapshot    graph.Graph
	Seq         int
}
