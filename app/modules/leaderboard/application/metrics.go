package leaderboardservice

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics is the observability contract for the aggregator.
type Metrics interface {
	RecordRefreshAttempt(ctx context.Context)
	RecordRefreshSuccess(ctx context.Context, entries int)
	RecordRefreshFailure(ctx context.Context)
	RecordRefreshDuration(ctx context.Context, duration time.Duration)
}

// PrometheusMetrics implements Metrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  prometheus.Counter
	successes prometheus.Counter
	failures  prometheus.Counter
	entries   prometheus.Gauge
	durations prometheus.Histogram
}

var _ Metrics = (*PrometheusMetrics)(nil)

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leaderboard_refresh_attempts_total",
			Help: "Leaderboard refreshes attempted.",
		}),
		successes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leaderboard_refresh_successes_total",
			Help: "Leaderboard refreshes that produced a snapshot.",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leaderboard_refresh_failures_total",
			Help: "Leaderboard refreshes that kept the previous snapshot.",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "leaderboard_snapshot_entries",
			Help: "Entries in the most recently computed snapshot.",
		}),
		durations: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "leaderboard_refresh_duration_seconds",
			Help:    "Leaderboard refresh latency.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.entries, m.durations)
	return m
}

func (m *PrometheusMetrics) RecordRefreshAttempt(context.Context) { m.attempts.Inc() }

func (m *PrometheusMetrics) RecordRefreshSuccess(_ context.Context, entries int) {
	m.successes.Inc()
	m.entries.Set(float64(entries))
}

func (m *PrometheusMetrics) RecordRefreshFailure(context.Context) { m.failures.Inc() }

func (m *PrometheusMetrics) RecordRefreshDuration(_ context.Context, duration time.Duration) {
	m.durations.Observe(duration.Seconds())
}

// NoOpMetrics discards everything; used in tests.
type NoOpMetrics struct{}

var _ Metrics = (*NoOpMetrics)(nil)

func (NoOpMetrics) RecordRefreshAttempt(context.Context)                 {}
func (NoOpMetrics) RecordRefreshSuccess(context.Context, int)            {}
func (NoOpMetrics) RecordRefreshFailure(context.Context)                 {}
func (NoOpMetrics) RecordRefreshDuration(context.Context, time.Duration) {}
