package kafka

import "time"

// Default consumer settings
const (
	// DefaultMinBytes is the minimum batch size the reader accepts.
	DefaultMinBytes = 1

	// DefaultMaxBytes is the maximum batch size the reader accepts.
	DefaultMaxBytes = 10 * 1024 * 1024 // 10MB

	// DefaultMaxWait is how long the reader waits for MinBytes to become available.
	DefaultMaxWait = 500 * time.Millisecond

	// DefaultCommitInterval is the interval at which offsets are flushed to Kafka.
	DefaultCommitInterval = time.Second
)

// Config holds configuration for a decoding Kafka consumer.
type Config struct {
	// Brokers is the list of Kafka broker addresses. Required.
	Brokers []string

	// Topic is the topic to consume. Required.
	Topic string

	// GroupID is the consumer group. When empty the reader consumes the
	// topic without group coordination.
	GroupID string

	// MinBytes, MaxBytes and MaxWait tune fetch batching. Zero values use
	// the package defaults.
	MinBytes int
	MaxBytes int
	MaxWait  time.Duration

	// CommitInterval is the interval at which offsets are committed when
	// a GroupID is set. Zero uses the package default.
	CommitInterval time.Duration

	// DecodeKeys enables decoding of message keys in addition to values.
	// Keys without registry framing pass through as opaque bytes either way.
	DecodeKeys bool
}
