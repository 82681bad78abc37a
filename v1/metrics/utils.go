package metrics

import "github.com/prometheus/client_golang/prometheus"

// createCounterVec creates a new Prometheus CounterVec with the given name,
// help text and label names. The caller is responsible for registration.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec creates a new Prometheus HistogramVec with the given
// name, help text, label names and buckets. The caller is responsible for
// registration.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec creates a new Prometheus GaugeVec with the given name,
// help text and label names. The caller is responsible for registration.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
