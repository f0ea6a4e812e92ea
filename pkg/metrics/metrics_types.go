package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Session metrics
	MutationsTotal      *prometheus.CounterVec
	MutationsRejected   *prometheus.CounterVec
	UndoRedoTotal       *prometheus.CounterVec
	HistoryDepth        prometheus.Gauge
	ValidationErrors    prometheus.Gauge
	GraphVertices       prometheus.Gauge
	GraphEdges          prometheus.Gauge

	// Algorithm metrics
	RunsTotal       *prometheus.CounterVec
	TraceSteps      prometheus.Histogram
	TraceMSTWeight  prometheus.Gauge
	PlaybackStarted *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a new Registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initSessionMetrics()
	r.initAlgorithmMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// DefaultRegistry returns the process-wide registry instance
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}
