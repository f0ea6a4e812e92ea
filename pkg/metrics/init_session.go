package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSessionMetrics() {
	r.MutationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mstviz_mutations_total",
			Help: "Total number of applied graph mutations",
		},
		[]string{"operation"}, // add_vertex, remove_vertex, add_edge, remove_edge, update_edge, replace, move_vertex
	)

	r.MutationsRejected = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mstviz_mutations_rejected_total",
			Help: "Mutations silently rejected for violating a precondition",
		},
		[]string{"operation"},
	)

	r.UndoRedoTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mstviz_undo_redo_total",
			Help: "Undo and redo operations applied",
		},
		[]string{"operation"}, // undo, redo
	)

	r.HistoryDepth = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mstviz_history_depth",
			Help: "Current depth of the undo stack",
		},
	)

	r.ValidationErrors = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mstviz_validation_errors",
			Help: "Number of validation errors on the current graph",
		},
	)

	r.GraphVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mstviz_graph_vertices",
			Help: "Number of vertices in the current graph",
		},
	)

	r.GraphEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mstviz_graph_edges",
			Help: "Number of edges in the current graph",
		},
	)
}
