package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dd0wney/mstviz/pkg/config"
	"github.com/dd0wney/mstviz/pkg/graph"
	"github.com/dd0wney/mstviz/pkg/logging"
	"github.com/dd0wney/mstviz/pkg/metrics"
	"github.com/dd0wney/mstviz/pkg/reversedelete"
	"github.com/dd0wney/mstviz/pkg/validation"
)

// HistoryEntry is one undo/redo snapshot: graph structure plus vertex
// positions, captured together so a restore is atomic.
type HistoryEntry struct {
	Graph     graph.Graph
	Positions map[string]graph.Position
}

// Session owns the one authoritative graph of a working session, its
// validation state, the undo/redo history and the active algorithm
// trace. Every exposed operation works copy-then-replace: callers and
// snapshots never share mutable structure with the session's own state.
//
// All public methods are synchronous and guarded by one mutex; the only
// background activity is the auto-advance player, which does nothing
// but call Next through the same lock.
type Session struct {
	mu sync.Mutex

	id        string
	graph     graph.Graph
	positions map[string]graph.Position
	errors    []validation.ValidationError

	undoStack []HistoryEntry
	redoStack []HistoryEntry

	trace  []reversedelete.Step
	cursor int
	player *player

	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
}

// New creates an empty session. Nil cfg, logger or registry fall back
// to defaults.
func New(cfg *config.Config, logger logging.Logger, reg *metrics.Registry) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.Nop{}
	}
	if reg == nil {
		reg = metrics.DefaultRegistry()
	}

	id := uuid.NewString()
	s := &Session{
		id:        id,
		graph:     graph.New(),
		positions: make(map[string]graph.Position),
		errors:    make([]validation.ValidationError, 0),
		undoStack: make([]HistoryEntry, 0),
		redoStack: make([]HistoryEntry, 0),
		cfg:       cfg,
		logger:    logger.With(logging.SessionID(id)),
		metrics:   reg,
	}
	s.errors = validation.Validate(s.graph)
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Graph returns a deep copy of the current graph.
func (s *Session) Graph() graph.Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.Clone(s.graph)
}

// Positions returns a deep copy of the current vertex positions.
func (s *Session) Positions() map[string]graph.Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	return graph.ClonePositions(s.positions)
}

// Errors returns a copy of the current validation error set.
func (s *Session) Errors() []validation.ValidationError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyErrorsLocked()
}

func (s *Session) copyErrorsLocked() []validation.ValidationError {
	out := make([]validation.ValidationError, len(s.errors))
	copy(out, s.errors)
	return out
}

// revalidateLocked refreshes the stored error set and the state gauges.
func (s *Session) revalidateLocked() {
	s.errors = validation.Validate(s.graph)
	s.metrics.UpdateGraphState(len(s.graph.Vertices), len(s.graph.Edges), len(s.errors), len(s.undoStack))
}
