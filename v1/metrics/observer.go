package metrics

import (
	"github.com/Aleph-Alpha/protodecode/v1/observability"
)

// ObserveOperation records a single pipeline operation into the built-in
// counters and histograms. It satisfies observability.Observer so a Metrics
// instance can be attached to any component that accepts an observer.
func (m *Metrics) ObserveOperation(op observability.OperationContext) {
	status := "success"
	if op.Error != nil {
		status = "error"
	}

	m.operationsTotal.WithLabelValues(op.Component, op.Operation, status).Inc()
	m.operationDuration.WithLabelValues(op.Component, op.Operation).Observe(op.Duration.Seconds())

	if op.Size > 0 {
		m.payloadBytes.WithLabelValues(op.Component, op.Operation).Observe(float64(op.Size))
	}
}
