package metrics

// Config defines the configuration for the metrics server.
type Config struct {
	// Address is the listen address of the HTTP server exposing /metrics,
	// for example ":9090".
	Address string

	// ServiceName is attached to every metric as the constant `service` label.
	ServiceName string

	// EnableDefaultCollectors registers the standard Go runtime, process and
	// build info collectors alongside the pipeline metrics.
	EnableDefaultCollectors bool
}
