package metrics

import (
	"testing"
	"time"
)

func counterValue(t *testing.T, c *Collector, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := c.registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					match = false
				}
			}
			if match {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestReportOutcomeCounts(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.ReportOutcome("ok")
	c.ReportOutcome("ok")
	c.ReportOutcome("degraded")
	c.ReportOutcome("failed")

	tests := []struct {
		outcome string
		want    float64
	}{
		{"ok", 2},
		{"degraded", 1},
		{"failed", 1},
	}
	for _, tt := range tests {
		got := counterValue(t, c, "report_generations_total", map[string]string{"outcome": tt.outcome})
		if got != tt.want {
			t.Errorf("generations{outcome=%q} = %v, want %v", tt.outcome, got, tt.want)
		}
	}
}

func TestFailureCounters(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.UploadFailure()
	c.UploadFailure()
	c.CleanupFailure()

	if got := counterValue(t, c, "report_upload_failures_total", nil); got != 2 {
		t.Errorf("upload failures = %v, want 2", got)
	}
	if got := counterValue(t, c, "report_cleanup_failures_total", nil); got != 1 {
		t.Errorf("cleanup failures = %v, want 1", got)
	}
}

func TestObserveStage(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.ObserveStage("render", 250*time.Millisecond)
	c.ObserveStage("render", 750*time.Millisecond)
	c.ObserveStage("export", time.Second)

	families, err := c.registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "report_stage_duration_seconds" {
			continue
		}
		byStage := make(map[string]uint64)
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "stage" {
					byStage[lp.GetValue()] = m.GetHistogram().GetSampleCount()
				}
			}
		}
		if byStage["render"] != 2 || byStage["export"] != 1 {
			t.Errorf("stage samples = %v, want render=2 export=1", byStage)
		}
		return
	}
	t.Fatal("stage duration histogram not registered")
}

func TestCollectorsAreIndependent(t *testing.T) {
	t.Parallel()

	a := NewCollector()
	b := NewCollector()
	a.ReportOutcome("ok")

	if got := counterValue(t, b, "report_generations_total", map[string]string{"outcome": "ok"}); got != 0 {
		t.Errorf("fresh collector already counts %v generations", got)
	}
}
