package metrics_test

import (
	"testing"

	"ledger/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveOperation(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.ObserveOperation("create_shipment", metrics.OutcomeOK)
	m.ObserveOperation("create_shipment", metrics.OutcomeOK)
	m.ObserveOperation("assign_shipment", "capacity_exceeded")

	families, err := registry.Gather()
	assert.NoError(t, err)
	counts := map[string]float64{}
	for _, f := range families {
		if f.GetName() != "ledger_operations_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			var operation, outcome string
			for _, label := range metric.GetLabel() {
				switch label.GetName() {
				case "operation":
					operation = label.GetValue()
				case "outcome":
					outcome = label.GetValue()
				}
			}
			counts[operation+"/"+outcome] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, map[string]float64{
		"create_shipment/ok":                2,
		"assign_shipment/capacity_exceeded": 1,
	}, counts)
}

func TestMetrics_SetDelayedShipments(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	m.SetDelayedShipments(4)

	families, err := registry.Gather()
	assert.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "ledger_delayed_shipments" {
			assert.InDelta(t, 4.0, f.GetMetric()[0].GetGauge().GetValue(), 0)
			return
		}
	}
	t.Fatal("ledger_delayed_shipments not gathered")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("x", metrics.OutcomeOK)
		m.SetDelayedShipments(1)
	})
}
