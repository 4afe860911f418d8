package observers

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsBreakpoints(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg, "test")
	require.NoError(t, err)

	ctx := context.Background()
	obs := m.Factory("crunch")()

	events := []*domain.Breakpoint{
		{Elapsed: 0, Progress: 0, Remaining: math.NaN(), Tracked: true},
		{Elapsed: 2 * time.Second, Progress: 0.5, Remaining: 2.0, Tracked: true},
		{Elapsed: 4 * time.Second, Progress: 1.0, Remaining: 0.0, Tracked: true},
	}
	for _, bp := range events {
		require.NoError(t, obs.Observe(ctx, bp))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.breakpoints.WithLabelValues("crunch")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.progress.WithLabelValues("crunch")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.remaining.WithLabelValues("crunch")))

	// Two intervals of two seconds each between the three events.
	count := testutil.CollectAndCount(m.intervals, "test_breakpoint_interval_seconds")
	assert.Equal(t, 1, count, "one histogram series per call label")
}

func TestMetrics_IntervalNeedsTwoEvents(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg, "")
	require.NoError(t, err)

	obs := m.Factory("one")()
	require.NoError(t, obs.Observe(context.Background(), &domain.Breakpoint{Elapsed: time.Second}))

	// A single event has no interval to measure yet; only the counter moved.
	assert.Equal(t, 1.0, testutil.ToFloat64(m.breakpoints.WithLabelValues("one")))
	assert.Equal(t, 0, testutil.CollectAndCount(m.intervals, "breakpoint_interval_seconds"))
}

func TestMetrics_IndeterminateEstimateNotExported(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg, "")
	require.NoError(t, err)

	obs := m.Factory("job")()
	require.NoError(t, obs.Observe(context.Background(), &domain.Breakpoint{
		Remaining: math.NaN(),
		Tracked:   true,
	}))

	// The remaining gauge is only set once the estimate is finite.
	assert.Equal(t, 0, testutil.CollectAndCount(m.remaining, "breakpoint_remaining_seconds"))
}

func TestMetrics_ObserverPerCallIntervals(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg, "")
	require.NoError(t, err)

	ctx := context.Background()
	factory := m.Factory("job")

	// Two calls under the same label: each observer measures intervals from
	// its own previous event, never across calls.
	for i := 0; i < 2; i++ {
		obs := factory()
		require.NoError(t, obs.Observe(ctx, &domain.Breakpoint{Elapsed: 0}))
		require.NoError(t, obs.Observe(ctx, &domain.Breakpoint{Elapsed: time.Second}))
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(m.breakpoints.WithLabelValues("job")))
}

func TestNewMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	_, err := NewMetrics(reg, "dup")
	require.NoError(t, err)

	_, err = NewMetrics(reg, "dup")
	assert.Error(t, err)
}
