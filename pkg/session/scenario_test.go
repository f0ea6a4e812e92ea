package session

import (
	"testing"

	"github.com/dd0wney/mstviz/pkg/interchange"
	"github.com/dd0wney/mstviz/pkg/reversedelete"
	"github.com/dd0wney/mstviz/pkg/validation"
)

// TestScenario_ImportEditRunUndo walks the full session lifecycle the
// way the UI drives it: import a legacy document, edit, run, navigate,
// then edit again and unwind with undo.
func TestScenario_ImportEditRunUndo(t *testing.T) {
	s := newTestSession()

	legacy := []byte(`{"vertices": ["A", "B", "C"], "edges": [
		{"u": "A", "v": "B", "w": 3},
		{"u": "B", "v": "C", "w": 4}
	]}`)
	g, positions, err := interchange.Import(legacy)
	if err != nil {
		t.Fatalf("legacy import failed: %v", err)
	}

	if errors := s.Replace(g, positions); len(errors) != 0 {
		t.Fatalf("imported path graph should be valid, got %v", errors)
	}

	// Close the triangle, then run.
	s.AddEdge("A", "C", 5)
	steps, ok := s.Run()
	if !ok {
		t.Fatal("run should be accepted")
	}
	if len(steps) == 0 {
		t.Fatal("expected a non-empty trace")
	}

	// Walk to the end: the last decision snapshot is the MST.
	for s.Next() {
	}
	step, _ := s.CurrentStep()
	if step.Kind != reversedelete.Complete {
		t.Fatalf("expected to end on the complete step, got %s", step.Kind)
	}
	if len(step.Snapshot.Edges) != 2 {
		t.Errorf("triangle MST has 2 edges, got %d", len(step.Snapshot.Edges))
	}

	// Editing clears the trace; undo unwinds the edit.
	s.RemoveEdge("A", "B")
	if s.ViewingTrace() {
		t.Error("edit must clear the trace")
	}
	if !s.Undo() {
		t.Fatal("undo should succeed after the edit")
	}
	if len(s.Graph().Edges) != 3 {
		t.Errorf("undo must restore the removed edge, got %d edges", len(s.Graph().Edges))
	}

	// The restored graph round-trips through export in wrapped form.
	data, err := interchange.Export(s.Graph(), s.Positions())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	back, _, err := interchange.Import(data)
	if err != nil {
		t.Fatalf("re-import failed: %v", err)
	}
	if len(back.Edges) != 3 || len(back.Vertices) != 3 {
		t.Errorf("round-trip lost data: %v", back)
	}
	if errors := validation.Validate(back); len(errors) != 0 {
		t.Errorf("re-imported graph should still validate, got %v", errors)
	}
}
