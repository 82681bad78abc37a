package schema_registry

import "time"

// DefaultTimeout is applied to registry HTTP requests when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config holds configuration for the schema registry client.
type Config struct {
	// URL is the schema registry endpoint (e.g. "http://localhost:8081").
	URL string

	// Username for basic auth (optional).
	Username string

	// Password for basic auth (optional).
	Password string

	// Timeout for HTTP requests. Defaults to DefaultTimeout.
	Timeout time.Duration
}
