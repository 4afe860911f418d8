package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	statusapi "github.com/aretw0/breakpoint/pkg/adapters/http"
	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/observers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTracker(t *testing.T) *observers.Tracker {
	t.Helper()

	tracker := observers.NewTracker()
	ctx := context.Background()

	a := tracker.Factory("crunch")()
	require.NoError(t, a.Observe(ctx, &domain.Breakpoint{
		Elapsed:   2 * time.Second,
		Result:    21,
		Progress:  0.5,
		Remaining: 2.0,
		Tracked:   true,
	}))

	b := tracker.Factory("batch")()
	require.NoError(t, b.Observe(ctx, &domain.Breakpoint{
		Elapsed: time.Second,
		Result:  "chunk",
	}))

	return tracker
}

func TestHandler_ListCalls(t *testing.T) {
	handler := statusapi.NewHandler(seedTracker(t), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/calls", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Calls []observers.Snapshot `json:"calls"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Calls, 2)

	// Sorted by id for stable output.
	assert.Equal(t, "batch-2", body.Calls[0].ID)
	assert.Equal(t, "crunch-1", body.Calls[1].ID)
}

func TestHandler_GetCall(t *testing.T) {
	handler := statusapi.NewHandler(seedTracker(t), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/calls/crunch-1", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)

	var snap observers.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "crunch-1", snap.ID)
	assert.Equal(t, 2.0, snap.ElapsedSeconds)
	require.NotNil(t, snap.Progress)
	assert.Equal(t, 0.5, *snap.Progress)
}

func TestHandler_GetCall_NotFound(t *testing.T) {
	handler := statusapi.NewHandler(observers.NewTracker(), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/calls/nope-1", nil))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "call not found")
}

func TestHandler_Metrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics, err := observers.NewMetrics(registry, "test")
	require.NoError(t, err)

	obs := metrics.Factory("crunch")()
	require.NoError(t, obs.Observe(context.Background(), &domain.Breakpoint{Elapsed: time.Second}))

	handler := statusapi.NewHandler(observers.NewTracker(), registry)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `test_breakpoint_events_total{call="crunch"} 1`)
}

func TestHandler_MetricsDisabled(t *testing.T) {
	handler := statusapi.NewHandler(observers.NewTracker(), nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodGet, "/metrics", nil))

	assert.Equal(t, nethttp.StatusNotFound, rec.Code)
}
