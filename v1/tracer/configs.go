package tracer

// Config defines the configuration for the OTLP trace exporter and provider.
type Config struct {
	// Endpoint is the host:port of the OTLP HTTP collector, for example
	// "localhost:4318". When empty, tracing is disabled and NewClient
	// returns a no-op Tracer.
	Endpoint string

	// ServiceName identifies this service in emitted spans.
	ServiceName string

	// SampleRatio controls head sampling. Values >= 1 sample every trace,
	// negative values disable sampling. Defaults to 1 when zero.
	SampleRatio float64

	// Insecure disables TLS on the exporter connection. Intended for
	// local development against a plain-HTTP collector.
	Insecure bool
}
