package kafka

import "context"

// MessageSource provides an interface for consuming decoded messages from a
// message broker.
//
// This interface is implemented by the concrete *Consumer type.
type MessageSource interface {
	// Fetch reads and decodes the next message, blocking until one is
	// available or ctx is done.
	Fetch(ctx context.Context) (*Message, error)

	// Commit marks a fetched message as processed.
	Commit(ctx context.Context, msg *Message) error

	// Close shuts down the source.
	Close() error
}
