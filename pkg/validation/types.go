package validation

import "github.com/dd0wney/mstviz/pkg/graph"

// ErrorKind categorizes a structural problem found in a graph.
type ErrorKind int

const (
	DuplicateEdge ErrorKind = iota
	SelfLoop
	MissingWeight
	NegativeWeight
	Disconnected
	DanglingReference
)

// String returns the string representation of an error kind.
func (k ErrorKind) String() string {
	switch k {
	case DuplicateEdge:
		return "duplicate_edge"
	case SelfLoop:
		return "self_loop"
	case MissingWeight:
		return "missing_weight"
	case NegativeWeight:
		return "negative_weight"
	case Disconnected:
		return "disconnected"
	case DanglingReference:
		return "dangling_reference"
	default:
		return "unknown"
	}
}

// ValidationError is one structural problem report. It is a plain value,
// never a Go error: validation problems are data the UI renders, not
// faults that unwind the stack. Edge and Vertex identify the offender
// when one exists.
type ValidationError struct {
	Kind    ErrorKind
	Message string
	Edge    *graph.Edge
	Vertex  string
}
