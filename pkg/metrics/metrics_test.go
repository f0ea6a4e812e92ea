package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if r.MutationsTotal == nil {
		t.Error("MutationsTotal not initialized")
	}
	if r.RunsTotal == nil {
		t.Error("RunsTotal not initialized")
	}
	if r.TraceSteps == nil {
		t.Error("TraceSteps not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

// gatherMetric finds a metric family by name in the registry output
func gatherMetric(t *testing.T, r *Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestRecordMutation(t *testing.T) {
	r := NewRegistry()

	r.RecordMutation("add_vertex")
	r.RecordMutation("add_vertex")
	r.RecordMutation("add_edge")

	mf := gatherMetric(t, r, "mstviz_mutations_total")
	if mf == nil {
		t.Fatal("mstviz_mutations_total not found")
	}

	total := 0.0
	for _, m := range mf.GetMetric() {
		total += m.GetCounter().GetValue()
	}
	if total != 3 {
		t.Errorf("expected 3 mutations recorded, got %v", total)
	}
}

func TestRecordRun(t *testing.T) {
	r := NewRegistry()

	r.RecordRun(true, 8, 7)
	r.RecordRun(false, 0, 0)

	mf := gatherMetric(t, r, "mstviz_runs_total")
	if mf == nil {
		t.Fatal("mstviz_runs_total not found")
	}

	byResult := make(map[string]float64)
	for _, m := range mf.GetMetric() {
		for _, l := range m.GetLabel() {
			if l.GetName() == "result" {
				byResult[l.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	if byResult["accepted"] != 1 || byResult["rejected"] != 1 {
		t.Errorf("expected 1 accepted and 1 rejected, got %v", byResult)
	}

	weight := gatherMetric(t, r, "mstviz_trace_mst_weight")
	if weight == nil || weight.GetMetric()[0].GetGauge().GetValue() != 7 {
		t.Error("expected MST weight gauge to be 7")
	}
}

func TestUpdateGraphState(t *testing.T) {
	r := NewRegistry()

	r.UpdateGraphState(3, 2, 1, 5)

	if mf := gatherMetric(t, r, "mstviz_graph_vertices"); mf.GetMetric()[0].GetGauge().GetValue() != 3 {
		t.Error("expected vertex gauge 3")
	}
	if mf := gatherMetric(t, r, "mstviz_history_depth"); mf.GetMetric()[0].GetGauge().GetValue() != 5 {
		t.Error("expected history depth gauge 5")
	}
}
