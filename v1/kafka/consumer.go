package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Aleph-Alpha/protodecode/v1/logger"
	"github.com/Aleph-Alpha/protodecode/v1/observability"
	"github.com/Aleph-Alpha/protodecode/v1/protodecode"
	"github.com/Aleph-Alpha/protodecode/v1/protovalue"
)

// Consumer reads registry-framed protobuf messages from a Kafka topic and
// decodes them into value trees.
//
// Consumer wraps a kafka-go reader around a protodecode.Decoder: the decoder
// extracts the schema identifier from each payload, so the consumer works
// across topics and subject naming strategies without per-topic schema
// configuration.
//
// Consumer implements the MessageSource interface.
type Consumer struct {
	// cfg stores the configuration for this consumer
	cfg Config

	// reader is the underlying Kafka reader
	reader *kafka.Reader

	// decoder turns raw payloads into value trees
	decoder *protodecode.Decoder

	// logger is used for structured logging
	logger *logger.Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer

	closeOnce sync.Once
	closeErr  error
}

// Message is one consumed Kafka message with its payload decoded.
type Message struct {
	// Topic, Partition and Offset locate the message in Kafka.
	Topic     string
	Partition int
	Offset    int64

	// Key is the decoded key when Config.DecodeKeys is set, otherwise the
	// raw key bytes as a protovalue.Bytes value.
	Key protovalue.Value

	// Value is the decoded payload. Tombstones decode to an empty
	// protovalue.Bytes value.
	Value protovalue.Value

	// Raw is the underlying Kafka message, needed for commits.
	Raw kafka.Message
}

// NewConsumer creates and initializes a new Consumer with the provided
// configuration and decoder.
//
// Example:
//
//	consumer, err := kafka.NewConsumer(kafka.Config{
//		Brokers: []string{"localhost:9092"},
//		Topic:   "payments",
//		GroupID: "payment-auditor",
//	}, decoder)
//	if err != nil {
//		return err
//	}
//	defer consumer.Close()
func NewConsumer(cfg Config, decoder *protodecode.Decoder) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka: topic is required")
	}
	if decoder == nil {
		return nil, errors.New("kafka: decoder is required")
	}

	// Apply defaults
	if cfg.MinBytes == 0 {
		cfg.MinBytes = DefaultMinBytes
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if cfg.MaxWait == 0 {
		cfg.MaxWait = DefaultMaxWait
	}
	if cfg.CommitInterval == 0 {
		cfg.CommitInterval = DefaultCommitInterval
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          cfg.Topic,
		GroupID:        cfg.GroupID,
		MinBytes:       cfg.MinBytes,
		MaxBytes:       cfg.MaxBytes,
		MaxWait:        cfg.MaxWait,
		CommitInterval: cfg.CommitInterval,
	})

	return &Consumer{
		cfg:     cfg,
		reader:  reader,
		decoder: decoder,
	}, nil
}

// WithLogger sets the logger for the consumer and returns the consumer for chaining.
func (c *Consumer) WithLogger(log *logger.Logger) *Consumer {
	c.logger = log
	return c
}

// WithObserver sets the observer for consumer operations and returns the
// consumer for chaining.
func (c *Consumer) WithObserver(observer observability.Observer) *Consumer {
	c.observer = observer
	return c
}

// Fetch reads the next message from the topic and decodes its payload.
// It blocks until a message is available or ctx is done. The returned
// message is not committed; call Commit after processing.
func (c *Consumer) Fetch(ctx context.Context) (*Message, error) {
	raw, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return nil, fmt.Errorf("kafka: fetching message: %w", err)
	}
	return c.decodeMessage(ctx, raw)
}

// Commit marks msg as processed. With a GroupID configured the offset is
// committed to Kafka; without one Commit is a no-op error from the reader.
func (c *Consumer) Commit(ctx context.Context, msg *Message) error {
	if err := c.reader.CommitMessages(ctx, msg.Raw); err != nil {
		return fmt.Errorf("kafka: committing offset %d: %w", msg.Offset, err)
	}
	return nil
}

// Close shuts down the underlying reader. Safe to call more than once.
func (c *Consumer) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.reader.Close()
		if c.logger != nil {
			c.logger.Info("kafka consumer closed", c.closeErr, map[string]interface{}{
				"topic": c.cfg.Topic,
			})
		}
	})
	return c.closeErr
}

// decodeMessage decodes the payload (and optionally the key) of a fetched
// Kafka message.
func (c *Consumer) decodeMessage(ctx context.Context, raw kafka.Message) (*Message, error) {
	start := time.Now()

	value, err := c.decoder.Decode(ctx, raw.Value)
	c.observeOperation("decode_value", raw.Topic, time.Since(start), err, int64(len(raw.Value)))
	if err != nil {
		if c.logger != nil {
			c.logger.Error("failed to decode message value", err, map[string]interface{}{
				"topic":     raw.Topic,
				"partition": raw.Partition,
				"offset":    raw.Offset,
			})
		}
		return nil, fmt.Errorf("kafka: decoding value at %s/%d@%d: %w", raw.Topic, raw.Partition, raw.Offset, err)
	}

	key := protovalue.Value(protovalue.Bytes(raw.Key))
	if c.cfg.DecodeKeys {
		keyStart := time.Now()
		key, err = c.decoder.Decode(ctx, raw.Key)
		c.observeOperation("decode_key", raw.Topic, time.Since(keyStart), err, int64(len(raw.Key)))
		if err != nil {
			return nil, fmt.Errorf("kafka: decoding key at %s/%d@%d: %w", raw.Topic, raw.Partition, raw.Offset, err)
		}
	}

	return &Message{
		Topic:     raw.Topic,
		Partition: raw.Partition,
		Offset:    raw.Offset,
		Key:       key,
		Value:     value,
		Raw:       raw,
	}, nil
}

// observeOperation notifies the observer about an operation if one is configured.
func (c *Consumer) observeOperation(operation, topic string, duration time.Duration, err error, size int64) {
	if c == nil || c.observer == nil {
		return
	}

	c.observer.ObserveOperation(observability.OperationContext{
		Component: "kafka",
		Operation: operation,
		Resource:  topic,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
