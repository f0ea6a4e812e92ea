package metrics

// RecordMutation records one applied graph mutation
func (r *Registry) RecordMutation(operation string) {
	r.MutationsTotal.WithLabelValues(operation).Inc()
}

// RecordRejectedMutation records a mutation that was silently rejected
func (r *Registry) RecordRejectedMutation(operation string) {
	r.MutationsRejected.WithLabelValues(operation).Inc()
}

// RecordUndoRedo records an undo or redo
func (r *Registry) RecordUndoRedo(operation string) {
	r.UndoRedoTotal.WithLabelValues(operation).Inc()
}

// RecordRun records an algorithm run and, when accepted, its trace size
// and resulting MST weight
func (r *Registry) RecordRun(accepted bool, steps int, mstWeight float64) {
	if !accepted {
		r.RunsTotal.WithLabelValues("rejected").Inc()
		return
	}
	r.RunsTotal.WithLabelValues("accepted").Inc()
	r.TraceSteps.Observe(float64(steps))
	r.TraceMSTWeight.Set(mstWeight)
}

// RecordPlayback records the start of auto-advance playback
func (r *Registry) RecordPlayback(tier string) {
	r.PlaybackStarted.WithLabelValues(tier).Inc()
}

// UpdateGraphState refreshes the gauges describing the current session
func (r *Registry) UpdateGraphState(vertices, edges, validationErrors, historyDepth int) {
	r.GraphVertices.Set(float64(vertices))
	r.GraphEdges.Set(float64(edges))
	r.ValidationErrors.Set(float64(validationErrors))
	r.HistoryDepth.Set(float64(historyDepth))
}
