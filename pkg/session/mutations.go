package session

import (
	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/logging"
	"github.com/dd0wney/mstviz/pkg/validation"
)

// beginMutationLocked runs the shared mutation prelude: while a trace is
// active the trace is cleared and no history entry is pushed; otherwise
// the current state is snapshotted onto the undo stack. Either way the
// redo stack is invalidated: history is linear, never branching.
func (s *Session) beginMutationLocked() {
	if s.trace != nil {
		s.clearTraceLocked()
	} else {
		s.undoStack = append(s.undoStack, HistoryEntry{
			Graph:     graph.Clone(s.graph),
			Positions: graph.ClonePositions(s.positions),
		})
	}
	s.redoStack = s.redoStack[:0]
}

// finishMutationLocked runs the shared mutation epilogue.
func (s *Session) finishMutationLocked(op string) []validation.ValidationError {
	s.revalidateLocked()
	s.metrics.RecordMutation(op)
	s.logger.Debug("mutation applied",
		logging.Operation(op),
		logging.Count(len(s.errors)))
	return s.copyErrorsLocked()
}

// rejectLocked records a silently rejected mutation. No state changes.
func (s *Session) rejectLocked(op string) []validation.ValidationError {
	s.metrics.RecordRejectedMutation(op)
	s.logger.Debug("mutation rejected", logging.Operation(op))
	return s.copyErrorsLocked()
}

// AddVertex adds a vertex at the given position. An empty label is
// auto-generated. A label that already exists is rejected silently:
// no mutation, no history push.
func (s *Session) AddVertex(label string, pos graph.Position) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if label == "" {
		label = graph.NextVertexLabel(s.graph)
	}
	if graph.HasVertex(s.graph, label) {
		return s.rejectLocked("add_vertex")
	}

	s.beginMutationLocked()

	next := graph.Clone(s.graph)
	next.Vertices = append(next.Vertices, label)
	s.graph = next

	positions := graph.ClonePositions(s.positions)
	positions[label] = pos
	s.positions = positions

	return s.finishMutationLocked("add_vertex")
}

// RemoveVertex removes a vertex and every edge incident to it, as one
// mutation with a single history entry. Unknown labels are rejected
// silently.
func (s *Session) RemoveVertex(label string) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !graph.HasVertex(s.graph, label) {
		return s.rejectLocked("remove_vertex")
	}

	s.beginMutationLocked()

	next := graph.Graph{
		Vertices: make([]string, 0, len(s.graph.Vertices)-1),
		Edges:    make([]graph.Edge, 0, len(s.graph.Edges)),
	}
	for _, v := range s.graph.Vertices {
		if v != label {
			next.Vertices = append(next.Vertices, v)
		}
	}
	for _, e := range s.graph.Edges {
		if e.U != label && e.V != label {
			next.Edges = append(next.Edges, e)
		}
	}
	s.graph = next

	positions := graph.ClonePositions(s.positions)
	delete(positions, label)
	s.positions = positions

	return s.finishMutationLocked("remove_vertex")
}

// AddEdge adds an undirected weighted edge. Self-loops and pairs that
// already have an edge (either orientation) are rejected silently.
// Endpoints need not exist yet; validation reports dangling references.
func (s *Session) AddEdge(u, v string, w float64) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u == v || graph.HasEdge(s.graph, u, v) {
		return s.rejectLocked("add_edge")
	}

	s.beginMutationLocked()

	next := graph.Clone(s.graph)
	next.Edges = append(next.Edges, graph.Edge{U: u, V: v, W: w})
	s.graph = next

	return s.finishMutationLocked("add_edge")
}

// RemoveEdge removes the edge between u and v, either orientation.
// Rejected silently when no such edge exists.
func (s *Session) RemoveEdge(u, v string) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !graph.HasEdge(s.graph, u, v) {
		return s.rejectLocked("remove_edge")
	}

	s.beginMutationLocked()
	s.graph = graph.RemoveEdge(s.graph, graph.Edge{U: u, V: v})

	return s.finishMutationLocked("remove_edge")
}

// UpdateEdgeWeight changes the weight of an existing edge. Rejected
// silently when no such edge exists.
func (s *Session) UpdateEdgeWeight(u, v string, w float64) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !graph.HasEdge(s.graph, u, v) {
		return s.rejectLocked("update_edge")
	}

	s.beginMutationLocked()

	next := graph.Clone(s.graph)
	probe := graph.Edge{U: u, V: v}
	for i := range next.Edges {
		if graph.EdgesEqual(next.Edges[i], probe) {
			next.Edges[i].W = w
		}
	}
	s.graph = next

	return s.finishMutationLocked("update_edge")
}

// Replace swaps in a whole new graph and position set, e.g. from an
// import or a preset. The incoming values are deep-copied.
func (s *Session) Replace(g graph.Graph, positions map[string]graph.Position) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.beginMutationLocked()

	s.graph = graph.Clone(g)
	if positions == nil {
		s.positions = make(map[string]graph.Position)
	} else {
		s.positions = graph.ClonePositions(positions)
	}

	return s.finishMutationLocked("replace")
}

// MoveVertex repositions a vertex, recording history so the move is
// undoable. Unknown labels are rejected silently.
func (s *Session) MoveVertex(label string, pos graph.Position) []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !graph.HasVertex(s.graph, label) {
		return s.rejectLocked("move_vertex")
	}

	s.beginMutationLocked()

	positions := graph.ClonePositions(s.positions)
	positions[label] = pos
	s.positions = positions

	return s.finishMutationLocked("move_vertex")
}
