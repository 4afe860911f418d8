package observers

import (
	"context"
	"math"
	"time"

	"github.com/aretw0/breakpoint/pkg/domain"
	"github.com/aretw0/breakpoint/pkg/ports"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports breakpoint activity to Prometheus. One Metrics value
// serves many wrapped callables; the "call" label separates them.
type Metrics struct {
	breakpoints *prometheus.CounterVec
	intervals   *prometheus.HistogramVec
	progress    *prometheus.GaugeVec
	remaining   *prometheus.GaugeVec
}

// NewMetrics registers the breakpoint metric family on reg under the given
// namespace (empty for none).
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	m := &Metrics{
		breakpoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "breakpoint_events_total",
			Help:      "Total number of suspension points observed.",
		}, []string{"call"}),
		intervals: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "breakpoint_interval_seconds",
			Help:      "Wall-clock interval between consecutive suspension points.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		}, []string{"call"}),
		progress: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "breakpoint_progress_ratio",
			Help:      "Latest reported progress fraction of a call.",
		}, []string{"call"}),
		remaining: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "breakpoint_remaining_seconds",
			Help:      "Latest estimated remaining time of a call.",
		}, []string{"call"}),
	}

	for _, c := range []prometheus.Collector{m.breakpoints, m.intervals, m.progress, m.remaining} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Factory returns an observer factory recording under the given call label.
func (m *Metrics) Factory(call string) ports.ObserverFactory {
	return func() ports.Observer {
		return &metricsObserver{metrics: m, call: call}
	}
}

type metricsObserver struct {
	metrics *Metrics
	call    string

	prev    time.Duration
	hasPrev bool
}

func (o *metricsObserver) Observe(ctx context.Context, bp *domain.Breakpoint) error {
	m := o.metrics
	m.breakpoints.WithLabelValues(o.call).Inc()

	if o.hasPrev {
		m.intervals.WithLabelValues(o.call).Observe((bp.Elapsed - o.prev).Seconds())
	}
	o.prev = bp.Elapsed
	o.hasPrev = true

	if bp.Tracked {
		m.progress.WithLabelValues(o.call).Set(bp.Progress)
		if !math.IsNaN(bp.Remaining) && !math.IsInf(bp.Remaining, 0) {
			m.remaining.WithLabelValues(o.call).Set(bp.Remaining)
		}
	}
	return nil
}
