// Package metrics provides Prometheus-backed observability for the decode
// pipeline.
//
// A Metrics instance owns an isolated Prometheus registry, a set of
// pipeline-level counters and histograms, and an HTTP server exposing the
// /metrics endpoint. It implements observability.Observer, so it can be
// attached directly to a Decoder or a Kafka Consumer:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:     ":9090",
//	    ServiceName: "payment-consumer",
//	})
//	decoder.WithObserver(m)
//	go m.Server.ListenAndServe()
//
// Recorded metrics:
//   - decode_operations_total{component,operation,status}
//   - decode_operation_duration_seconds{component,operation}
//   - decode_payload_bytes{component,operation}
//
// All metrics additionally carry the constant `service` label taken from
// Config.ServiceName.
package metrics
