package schema_registry

import "errors"

// Common schema registry errors
var (
	// ErrSchemaNotFound is returned when the registry has no entry for the
	// requested identifier or subject/version. Retrying will not help:
	// registry entries are immutable and identifiers are never reused.
	ErrSchemaNotFound = errors.New("schema_registry: schema not found")

	// ErrRegistryUnavailable is returned for transport failures and
	// unexpected server responses. These are considered transient.
	ErrRegistryUnavailable = errors.New("schema_registry: registry unavailable")
)

// IsNotFoundError checks if the error is a "schema not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrSchemaNotFound)
}

// IsUnavailableError checks if the error is a transient registry error.
func IsUnavailableError(err error) bool {
	return errors.Is(err, ErrRegistryUnavailable)
}
