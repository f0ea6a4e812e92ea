package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAlgorithmMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mstviz_runs_total",
			Help: "Reverse-Delete runs by outcome",
		},
		[]string{"result"}, // accepted, rejected
	)

	r.TraceSteps = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mstviz_trace_steps",
			Help:    "Number of steps in generated traces",
			Buckets: []float64{2, 5, 10, 25, 50, 100, 250},
		},
	)

	r.TraceMSTWeight = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "mstviz_trace_mst_weight",
			Help: "Total weight of the MST from the most recent run",
		},
	)

	r.PlaybackStarted = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "mstviz_playback_started_total",
			Help: "Auto-advance playback starts by speed tier",
		},
		[]string{"tier"}, // slow, normal, fast
	)
}
