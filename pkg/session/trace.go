package session

import (
	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/logging"
	"github.com/dd0wney/mstviz/pkg/reversedelete"
)

// Run executes Reverse-Delete over the current graph and makes the
// resulting trace active with the cursor at step 0. Rejected (returns
// false) while the graph has validation errors. A run while a previous
// trace is active replaces it.
func (s *Session) Run() ([]reversedelete.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.errors) > 0 {
		s.metrics.RecordRun(false, 0, 0)
		s.logger.Info("run rejected: graph has validation errors",
			logging.Count(len(s.errors)))
		return nil, false
	}

	s.clearTraceLocked()
	s.trace = reversedelete.Run(graph.Clone(s.graph))
	s.cursor = 0

	mstWeight := 0.0
	if len(s.trace) > 0 {
		mstWeight = graph.TotalWeight(s.trace[len(s.trace)-1].Snapshot)
	}
	s.metrics.RecordRun(true, len(s.trace), mstWeight)
	s.logger.Info("run complete",
		logging.Count(len(s.trace)),
		logging.Float64("mst_weight", mstWeight))

	return s.traceCopyLocked(), true
}

// ViewingTrace reports whether a trace is active.
func (s *Session) ViewingTrace() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.trace != nil
}

// Trace returns a copy of the active trace, or nil when editing.
func (s *Session) Trace() []reversedelete.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trace == nil {
		return nil
	}
	return s.traceCopyLocked()
}

func (s *Session) traceCopyLocked() []reversedelete.Step {
	out := make([]reversedelete.Step, len(s.trace))
	copy(out, s.trace)
	return out
}

// Cursor returns the index of the step currently displayed.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// CurrentStep returns the step under the cursor, if a trace is active.
func (s *Session) CurrentStep() (reversedelete.Step, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trace == nil || len(s.trace) == 0 {
		return reversedelete.Step{}, false
	}
	return s.trace[s.cursor], true
}

// Next advances the cursor one step. Returns false at the end of the
// trace or when no trace is active. Navigation never touches the graph
// or the history.
func (s *Session) Next() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextLocked()
}

func (s *Session) nextLocked() bool {
	if s.trace == nil || s.cursor >= len(s.trace)-1 {
		return false
	}
	s.cursor++
	return true
}

// Previous moves the cursor one step back.
func (s *Session) Previous() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace == nil || s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// GoTo jumps the cursor to an absolute step index.
func (s *Session) GoTo(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace == nil || index < 0 || index >= len(s.trace) {
		return false
	}
	s.cursor = index
	return true
}

// Reset moves the cursor back to the first step and pauses playback.
// The trace stays active.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trace == nil {
		return
	}
	s.stopPlayerLocked()
	s.cursor = 0
}

// clearTraceLocked discards the active trace, stopping any playback.
func (s *Session) clearTraceLocked() {
	s.stopPlayerLocked()
	s.trace = nil
	s.cursor = 0
}
