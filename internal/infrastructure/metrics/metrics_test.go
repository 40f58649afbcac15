package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.RepaymentsSettled == nil || m.EffectCalculations == nil || m.WizardTransitions == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.RepaymentsSettled.Inc()
	m.EffectCalculations.WithLabelValues("OK").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.RepaymentsSettled); got != 1 {
		t.Fatalf("expected settled counter 1, got %v", got)
	}
}

func TestNewWithSeparateRegistries(t *testing.T) {
	// Registering twice on distinct registries must not panic.
	New(prometheus.NewRegistry())
	New(prometheus.NewRegistry())
}
