package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/protodecode/v1/protodecode"
	"github.com/Aleph-Alpha/protodecode/v1/schema_registry"
)

func testDecoder(t *testing.T) *protodecode.Decoder {
	t.Helper()
	client, err := schema_registry.NewClient(schema_registry.Config{URL: "http://127.0.0.1:1"})
	require.NoError(t, err)
	decoder, err := protodecode.NewDecoder(protodecode.Config{Registry: client})
	require.NoError(t, err)
	return decoder
}

func TestNewConsumerValidation(t *testing.T) {
	decoder := testDecoder(t)

	_, err := NewConsumer(Config{Topic: "t"}, decoder)
	assert.Error(t, err, "brokers are required")

	_, err = NewConsumer(Config{Brokers: []string{"localhost:9092"}}, decoder)
	assert.Error(t, err, "topic is required")

	_, err = NewConsumer(Config{Brokers: []string{"localhost:9092"}, Topic: "t"}, nil)
	assert.Error(t, err, "decoder is required")
}

func TestNewConsumerAppliesDefaults(t *testing.T) {
	consumer, err := NewConsumer(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "payments",
	}, testDecoder(t))
	require.NoError(t, err)
	defer consumer.Close()

	assert.Equal(t, DefaultMinBytes, consumer.cfg.MinBytes)
	assert.Equal(t, DefaultMaxBytes, consumer.cfg.MaxBytes)
	assert.Equal(t, DefaultMaxWait, consumer.cfg.MaxWait)
	assert.Equal(t, DefaultCommitInterval, consumer.cfg.CommitInterval)
}

func TestConsumerCloseIsIdempotent(t *testing.T) {
	consumer, err := NewConsumer(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "payments",
	}, testDecoder(t))
	require.NoError(t, err)

	first := consumer.Close()
	second := consumer.Close()
	assert.Equal(t, first, second)
}

func TestWithLoggerAndObserverChain(t *testing.T) {
	consumer, err := NewConsumer(Config{
		Brokers: []string{"localhost:9092"},
		Topic:   "payments",
	}, testDecoder(t))
	require.NoError(t, err)
	defer consumer.Close()

	out := consumer.WithLogger(nil).WithObserver(nil)
	assert.Same(t, consumer, out)
}
