package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/protodecode/v1/observability"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewMetrics(Config{
		Address:     ":0",
		ServiceName: "test-service",
	})
}

func TestObserveOperationCountsSuccess(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveOperation(observability.OperationContext{
		Component: "protodecode",
		Operation: "decode",
		Duration:  5 * time.Millisecond,
		Size:      128,
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "protodecode",
		Operation: "decode",
		Duration:  7 * time.Millisecond,
		Size:      64,
	})

	count := testutil.ToFloat64(m.operationsTotal.WithLabelValues("protodecode", "decode", "success"))
	assert.Equal(t, 2.0, count)
}

func TestObserveOperationCountsErrors(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveOperation(observability.OperationContext{
		Component: "protodecode",
		Operation: "resolve_closure",
		Duration:  time.Millisecond,
		Error:     errors.New("registry unavailable"),
	})

	errCount := testutil.ToFloat64(m.operationsTotal.WithLabelValues("protodecode", "resolve_closure", "error"))
	assert.Equal(t, 1.0, errCount)

	okCount := testutil.ToFloat64(m.operationsTotal.WithLabelValues("protodecode", "resolve_closure", "success"))
	assert.Equal(t, 0.0, okCount)
}

func TestObserveOperationSkipsZeroSize(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveOperation(observability.OperationContext{
		Component: "protodecode",
		Operation: "build_context",
		Duration:  time.Millisecond,
	})

	// No payload observation should have been recorded for a zero size.
	count := testutil.CollectAndCount(m.payloadBytes)
	assert.Equal(t, 0, count)
}

func TestMetricsCarryServiceLabel(t *testing.T) {
	m := newTestMetrics(t)

	m.ObserveOperation(observability.OperationContext{
		Component: "protodecode",
		Operation: "decode",
		Duration:  time.Millisecond,
	})

	server := httptest.NewServer(m.Server.Handler)
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `service="test-service"`)
	assert.Contains(t, string(body), "decode_operations_total")
}

func TestDefaultCollectorsOptional(t *testing.T) {
	withCollectors := NewMetrics(Config{
		Address:                 ":0",
		ServiceName:             "with",
		EnableDefaultCollectors: true,
	})
	without := NewMetrics(Config{
		Address:     ":0",
		ServiceName: "without",
	})

	withFamilies, err := withCollectors.Registry.Gather()
	require.NoError(t, err)
	withoutFamilies, err := without.Registry.Gather()
	require.NoError(t, err)

	assert.Greater(t, len(withFamilies), len(withoutFamilies))
}
