package session

import (
	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/logging"
)

// CanUndo reports whether undo would do anything. Always false while a
// trace is being viewed.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace == nil && len(s.undoStack) > 0
}

// CanRedo reports whether redo would do anything. Always false while a
// trace is being viewed.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace == nil && len(s.redoStack) > 0
}

// Undo restores the most recent history entry, pushing the current
// state onto the redo stack. Graph and positions are restored together,
// atomically. No-op when the history is empty or a trace is active.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace != nil || len(s.undoStack) == 0 {
		return false
	}

	s.redoStack = append(s.redoStack, HistoryEntry{
		Graph:     graph.Clone(s.graph),
		Positions: graph.ClonePositions(s.positions),
	})

	entry := s.undoStack[len(s.undoStack)-1]
	s.undoStack = s.undoStack[:len(s.undoStack)-1]
	s.restoreLocked(entry)

	s.metrics.RecordUndoRedo("undo")
	s.logger.Debug("undo applied", logging.Count(len(s.undoStack)))
	return true
}

// Redo is the mirror of Undo, using the redo stack.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace != nil || len(s.redoStack) == 0 {
		return false
	}

	s.undoStack = append(s.undoStack, HistoryEntry{
		Graph:     graph.Clone(s.graph),
		Positions: graph.ClonePositions(s.positions),
	})

	entry := s.redoStack[len(s.redoStack)-1]
	s.redoStack = s.redoStack[:len(s.redoStack)-1]
	s.restoreLocked(entry)

	s.metrics.RecordUndoRedo("redo")
	s.logger.Debug("redo applied", logging.Count(len(s.redoStack)))
	return true
}

// restoreLocked swaps a history entry in as the current state. The
// entry is cloned: stacks must never share structure with live state.
func (s *Session) restoreLocked(entry HistoryEntry) {
	s.graph = graph.Clone(entry.Graph)
	s.positions = graph.ClonePositions(entry.Positions)
	s.clearTraceLocked()
	s.revalidateLocked()
}
