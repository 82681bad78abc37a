package tracer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientDisabledWithoutEndpoint(t *testing.T) {
	tr, err := NewClient(context.Background(), Config{ServiceName: "test"})
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Nil(t, tr.provider)

	// Shutdown on a no-op tracer must not fail.
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestNewClientBuildsProvider(t *testing.T) {
	// The OTLP HTTP exporter connects lazily, so construction succeeds even
	// without a collector listening on the endpoint.
	tr, err := NewClient(context.Background(), Config{
		Endpoint:    "127.0.0.1:4318",
		ServiceName: "test",
		Insecure:    true,
	})
	require.NoError(t, err)
	require.NotNil(t, tr.provider)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// A cancelled context still lets Shutdown return without blocking.
	_ = tr.Shutdown(ctx)
}
