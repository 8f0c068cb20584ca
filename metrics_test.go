package ecs

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestWorldMetricsDisabledByDefault(t *testing.T) {
	w := NewWorld()
	if _, ok := w.cfg.metrics.(noopMetrics); !ok {
		t.Fatalf("expected noop metrics sink by default")
	}
}

func TestWorldMetricsPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	w := NewWorld(WithMetrics(reg))

	e, _ := w.CreateEntity()
	if err := Attach(w, e, Position{X: 1}); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}

	var found bool
	for _, mf := range families {
		if mf.GetName() == "ecs_entities_live" {
			found = true
			if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 1 {
				t.Fatalf("ecs_entities_live = %v, want 1", got)
			}
		}
	}
	if !found {
		t.Fatalf("expected ecs_entities_live to be registered")
	}
}
