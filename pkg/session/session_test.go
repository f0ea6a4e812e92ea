package session

import (
	"reflect"
	"testing"

	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/metrics"
	"github.com/dd0wney/mstviz/pkg/validation"
)

func newTestSession() *Session {
	return New(nil, nil, metrics.NewRegistry())
}

// triangleSession builds a session holding the valid A-B-C triangle.
func triangleSession(t *testing.T) *Session {
	t.Helper()
	s := newTestSession()
	s.AddVertex("A", graph.Position{X: 0, Y: 0})
	s.AddVertex("B", graph.Position{X: 1, Y: 0})
	s.AddVertex("C", graph.Position{X: 0, Y: 1})
	s.AddEdge("A", "B", 3)
	s.AddEdge("B", "C", 4)
	errors := s.AddEdge("A", "C", 5)
	if len(errors) != 0 {
		t.Fatalf("triangle should validate cleanly, got %v", errors)
	}
	return s
}

func TestAddVertex_AutoLabel(t *testing.T) {
	s := newTestSession()

	s.AddVertex("", graph.Position{})
	s.AddVertex("", graph.Position{})

	g := s.Graph()
	if !reflect.DeepEqual(g.Vertices, []string{"A", "B"}) {
		t.Errorf("expected auto labels [A B], got %v", g.Vertices)
	}
}

func TestAddVertex_DuplicateRejectedSilently(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	canUndoBefore := s.CanUndo()

	s.AddVertex("A", graph.Position{})

	g := s.Graph()
	if len(g.Vertices) != 1 {
		t.Errorf("duplicate label must not mutate, got vertices %v", g.Vertices)
	}
	if s.CanUndo() != canUndoBefore || len(s.undoStack) != 1 {
		t.Error("rejected mutation must not push history")
	}
}

func TestAddEdge_Rejections(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	s.AddVertex("B", graph.Position{})
	s.AddEdge("A", "B", 1)
	depth := len(s.undoStack)

	s.AddEdge("A", "A", 1) // self-loop
	s.AddEdge("B", "A", 2) // duplicate pair, reversed orientation

	if got := len(s.Graph().Edges); got != 1 {
		t.Errorf("expected 1 edge after rejections, got %d", got)
	}
	if len(s.undoStack) != depth {
		t.Error("rejected edges must not push history")
	}
}

func TestAddEdge_DanglingEndpointSurfacesAsValidationError(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})

	errors := s.AddEdge("A", "GHOST", 1)

	found := false
	for _, e := range errors {
		if e.Kind == validation.DanglingReference {
			found = true
		}
	}
	if !found {
		t.Errorf("expected dangling_reference in returned error set, got %v", errors)
	}
}

func TestRemoveVertex_RemovesIncidentEdgesInOneEntry(t *testing.T) {
	s := triangleSession(t)
	depth := len(s.undoStack)

	s.RemoveVertex("C")

	g := s.Graph()
	if len(g.Vertices) != 2 || len(g.Edges) != 1 {
		t.Fatalf("expected 2 vertices and 1 edge after removing C, got %d/%d",
			len(g.Vertices), len(g.Edges))
	}
	if len(s.undoStack) != depth+1 {
		t.Errorf("vertex removal plus incident edges must be one history entry, depth %d -> %d",
			depth, len(s.undoStack))
	}

	// One undo brings everything back.
	s.Undo()
	g = s.Graph()
	if len(g.Vertices) != 3 || len(g.Edges) != 3 {
		t.Errorf("undo must restore vertex and incident edges together, got %d/%d",
			len(g.Vertices), len(g.Edges))
	}
}

func TestUpdateEdgeWeight(t *testing.T) {
	s := triangleSession(t)

	s.UpdateEdgeWeight("B", "A", 10)

	for _, e := range s.Graph().Edges {
		if graph.EdgesEqual(e, graph.Edge{U: "A", V: "B"}) && e.W != 10 {
			t.Errorf("expected updated weight 10, got %v", e.W)
		}
	}

	depth := len(s.undoStack)
	s.UpdateEdgeWeight("A", "GHOST", 1)
	if len(s.undoStack) != depth {
		t.Error("updating a missing edge must be rejected silently")
	}
}

func TestReplace_DeepCopiesInput(t *testing.T) {
	s := newTestSession()
	g := graph.Graph{
		Vertices: []string{"A", "B"},
		Edges:    []graph.Edge{{U: "A", V: "B", W: 1}},
	}
	positions := map[string]graph.Position{"A": {X: 1}}

	s.Replace(g, positions)

	// Mutating the caller's values must not touch the session.
	g.Vertices[0] = "Z"
	positions["A"] = graph.Position{X: 99}

	got := s.Graph()
	if got.Vertices[0] != "A" {
		t.Error("session aliased the replaced graph")
	}
	if s.Positions()["A"].X != 1 {
		t.Error("session aliased the replaced positions")
	}
}

func TestMutation_ReturnsFreshErrorSet(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	errors := s.AddVertex("B", graph.Position{})

	// A and B share no edge: disconnected.
	if len(errors) != 1 || errors[0].Kind != validation.Disconnected {
		t.Fatalf("expected single disconnected error, got %v", errors)
	}

	errors = s.AddEdge("A", "B", 1)
	if len(errors) != 0 {
		t.Errorf("expected clean error set after connecting, got %v", errors)
	}
}

func TestGraph_ReturnsCopy(t *testing.T) {
	s := triangleSession(t)

	g := s.Graph()
	g.Edges[0].W = 999
	g.Vertices[0] = "Z"

	if s.Graph().Edges[0].W == 999 || s.Graph().Vertices[0] == "Z" {
		t.Error("Graph() must return an isolated copy")
	}
}
