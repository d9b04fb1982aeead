package scorecardservice

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	scorecarddomain "github.com/fairway-crew/tripbot/app/modules/scorecard/domain"
)

// Metrics is the observability contract for the scorecard engine. Tests use
// NoOpMetrics; the app wires PrometheusMetrics.
type Metrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordHoleResult(ctx context.Context, category scorecarddomain.Category)
}

// PrometheusMetrics implements Metrics on a prometheus registry.
type PrometheusMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	results   *prometheus.CounterVec
}

var _ Metrics = (*PrometheusMetrics)(nil)

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_operation_attempts_total",
			Help: "Scorecard engine operations attempted.",
		}, []string{"operation"}),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_operation_successes_total",
			Help: "Scorecard engine operations that completed successfully.",
		}, []string{"operation"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_operation_failures_total",
			Help: "Scorecard engine operations that returned an error.",
		}, []string{"operation"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorecard_operation_duration_seconds",
			Help:    "Scorecard engine operation latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorecard_hole_results_total",
			Help: "Hole results recorded, by classification.",
		}, []string{"category"}),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations, m.results)
	return m
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.attempts.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.successes.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.failures.WithLabelValues(operation).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.durations.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordHoleResult(_ context.Context, category scorecarddomain.Category) {
	m.results.WithLabelValues(string(category)).Inc()
}

// NoOpMetrics discards everything; used in tests.
type NoOpMetrics struct{}

var _ Metrics = (*NoOpMetrics)(nil)

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordHoleResult(context.Context, scorecarddomain.Category)    {}
