// Package observability defines the shared observer hooks used by the client
// packages in this library. Client packages report every significant operation
// (decode calls, registry fetches, schema compilations) to an optional
// Observer, which implementations can map onto metrics, tracing, or logging.
package observability

import "time"

// OperationContext describes a single observed operation.
// It is passed by value to observers and must not be retained with the
// expectation of later mutation by the reporting component.
type OperationContext struct {
	// Component identifies the reporting package (e.g. "protodecode", "kafka").
	Component string

	// Operation is the name of the operation (e.g. "decode", "resolve_closure").
	Operation string

	// Resource identifies the primary resource the operation acted on.
	// For decode operations this is the schema identifier.
	Resource string

	// SubResource optionally narrows the resource, e.g. the resolved
	// fully-qualified message name.
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the operation error, nil on success.
	Error error

	// Size is the payload size in bytes where applicable, zero otherwise.
	Size int64

	// Metadata carries operation-specific key/value pairs.
	Metadata map[string]interface{}
}

// Observer receives operation notifications from client packages.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}
