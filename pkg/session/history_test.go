package session

import (
	"reflect"
	"testing"

	"github.com/dd0wney/mstviz/pkg/graph"
)

func TestUndoRedo_RoundTrip(t *testing.T) {
	s := triangleSession(t)
	s.MoveVertex("A", graph.Position{X: 50, Y: 50})

	graphBefore := s.Graph()
	positionsBefore := s.Positions()

	if !s.Undo() {
		t.Fatal("undo should succeed")
	}
	if s.Positions()["A"].X == 50 {
		t.Fatal("undo did not restore positions")
	}
	if !s.Redo() {
		t.Fatal("redo should succeed")
	}

	if !reflect.DeepEqual(s.Graph(), graphBefore) {
		t.Error("undo+redo must restore the identical graph")
	}
	if !reflect.DeepEqual(s.Positions(), positionsBefore) {
		t.Error("undo+redo must restore the identical positions")
	}
}

func TestUndo_EmptyHistoryIsNoop(t *testing.T) {
	s := newTestSession()

	if s.Undo() {
		t.Error("undo with empty history must be a no-op")
	}
	if s.CanUndo() {
		t.Error("CanUndo must be false on a fresh session")
	}
}

func TestRedo_ClearedByNewMutation(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	s.AddVertex("B", graph.Position{})
	s.Undo()

	if !s.CanRedo() {
		t.Fatal("expected redo available after undo")
	}

	s.AddVertex("C", graph.Position{})

	if s.CanRedo() {
		t.Error("any new mutation must clear the redo stack")
	}
	if s.Redo() {
		t.Error("redo after invalidation must be a no-op")
	}
}

func TestUndoRedo_DisabledWhileViewingTrace(t *testing.T) {
	s := triangleSession(t)
	s.MoveVertex("A", graph.Position{X: 9})

	if _, ok := s.Run(); !ok {
		t.Fatal("run should be accepted on a valid graph")
	}

	if s.CanUndo() || s.Undo() {
		t.Error("undo must be disabled while a trace is active")
	}
	if s.CanRedo() || s.Redo() {
		t.Error("redo must be disabled while a trace is active")
	}
}

func TestUndo_RestoresGraphAndPositionsAtomically(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{X: 1, Y: 2})

	s.Undo()

	if len(s.Graph().Vertices) != 0 {
		t.Error("undo must remove the vertex")
	}
	if len(s.Positions()) != 0 {
		t.Error("undo must remove the position in the same restore")
	}
}

func TestUndo_MultipleLevels(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	s.AddVertex("B", graph.Position{})
	s.AddEdge("A", "B", 1)

	s.Undo()
	s.Undo()

	g := s.Graph()
	if len(g.Vertices) != 1 || len(g.Edges) != 0 {
		t.Errorf("expected to be back at just vertex A, got %v", g)
	}

	s.Redo()
	s.Redo()
	g = s.Graph()
	if len(g.Vertices) != 2 || len(g.Edges) != 1 {
		t.Errorf("expected full state back after redos, got %v", g)
	}
}

func TestUndo_Revalidates(t *testing.T) {
	s := newTestSession()
	s.AddVertex("A", graph.Position{})
	s.AddVertex("B", graph.Position{})
	s.AddEdge("A", "B", 1) // now valid

	if len(s.Errors()) != 0 {
		t.Fatal("expected valid graph")
	}

	s.Undo() // back to disconnected A, B

	if len(s.Errors()) == 0 {
		t.Error("undo must re-run validation on the restored graph")
	}
}
