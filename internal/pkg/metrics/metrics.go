// Package metrics holds the Prometheus collectors of the ledger.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels recorded when an operation succeeds.
const OutcomeOK = "ok"

// Metrics exposes the operation counter and the delayed shipment gauge.
type Metrics struct {
	operations *prometheus.CounterVec
	delayed    prometheus.Gauge
}

// New registers the collectors against registerer. A nil registerer uses a
// private registry, which keeps tests independent of each other.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}

	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_operations_total",
			Help: "Ledger operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		delayed: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_delayed_shipments",
			Help: "Shipments past their estimated delivery time at the last monitor run.",
		}),
	}
	registerer.MustRegister(m.operations, m.delayed)
	return m
}

func (m *Metrics) ObserveOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) SetDelayedShipments(n int) {
	if m == nil {
		return
	}
	m.delayed.Set(float64(n))
}
