package protodecode

import (
	"errors"

	"github.com/Aleph-Alpha/protodecode/v1/schema_registry"
)

// Common decode errors
var (
	// ErrInvalidWirePayload is returned when payload bytes are not valid
	// registry-framed protobuf: a malformed message-index envelope or a
	// protobuf body that does not parse. These are payload defects and
	// are never cached.
	ErrInvalidWirePayload = errors.New("protodecode: no protobuf compatible bytes")

	// ErrNameResolution is returned when the message-index path does not
	// fit the root schema's declared message nesting. This indicates
	// payload corruption or a schema/payload version mismatch.
	ErrNameResolution = errors.New("protodecode: message index out of range")

	// ErrSchemaParse is returned when a schema closure cannot be compiled
	// into a descriptor set. Schema content is immutable once registered,
	// so retrying will not help.
	ErrSchemaParse = errors.New("protodecode: schema compilation failed")

	// ErrReferenceCycle is returned when a schema's reference graph
	// contains a cycle.
	ErrReferenceCycle = errors.New("protodecode: schema reference cycle")
)

// Error is the typed failure returned by decoder operations. It carries the
// underlying cause, whether retrying the operation can succeed, and whether
// the error was served from the decoder's error cache rather than freshly
// produced.
type Error struct {
	// Message describes the failing operation.
	Message string

	// Cause is the underlying error, if any.
	Cause error

	// Retryable reports whether the same call can succeed later, e.g.
	// after a transient registry outage.
	Retryable bool

	// Cached reports whether this error was replayed from the error
	// cache instead of being observed fresh.
	Cached bool
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// intoCache returns a copy of e marked as served from the error cache.
func (e *Error) intoCache() *Error {
	cached := *e
	cached.Cached = true
	return &cached
}

func newRetryable(message string, cause error) *Error {
	return &Error{Message: message, Cause: cause, Retryable: true}
}

func newNonRetryable(message string, cause error) *Error {
	return &Error{Message: message, Cause: cause, Retryable: false}
}

// fromRegistryError wraps a schema_registry error, deriving retryability
// from its kind: unavailable registries are transient, missing schemas are
// permanent.
func fromRegistryError(message string, cause error) *Error {
	return &Error{
		Message:   message,
		Cause:     cause,
		Retryable: schema_registry.IsUnavailableError(cause),
	}
}

// IsRetryable reports whether err is a decoder error that may succeed on a
// later attempt.
func IsRetryable(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Retryable
}

// IsCached reports whether err was served from the decoder's error cache.
func IsCached(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Cached
}
