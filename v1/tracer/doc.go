// Package tracer configures process-wide OpenTelemetry tracing over OTLP.
//
// NewClient installs a batching tracer provider as the global OpenTelemetry
// provider, so any component that calls otel.Tracer — such as the decoder's
// per-operation spans — exports through the configured collector without
// explicit wiring. With an empty endpoint the package stays a no-op, which
// keeps tracing strictly opt-in.
package tracer
