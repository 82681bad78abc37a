package logger

// Level represents the minimum severity of log entries that will be emitted.
type Level int

const (
	// Debug enables all log output including per-decode cache diagnostics.
	Debug Level = iota

	// Info enables informational output such as cache inserts and lifecycle events.
	Info

	// Warning enables warnings and errors only.
	Warning

	// Error enables error output only.
	Error
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum log level. Defaults to Info.
	Level Level

	// ServiceName is attached to every log entry as the "service" field.
	ServiceName string
}
