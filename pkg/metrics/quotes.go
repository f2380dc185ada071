package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Quote outcomes reported on quote_calculations_total.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// QuoteMetrics records price calculations served by the API.
type QuoteMetrics struct {
	duration  *prometheus.HistogramVec
	total     *prometheus.CounterVec
	anomalies *prometheus.CounterVec
}

// NewQuoteMetrics registers the quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_calculation_duration_seconds",
		Help:    "Duration of price calculations including catalog load, in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"context"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_calculations_total",
		Help: "Price calculations by catalog context and outcome.",
	}, []string{"context", "outcome"})
	anomalies := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_catalog_anomalies_total",
		Help: "Catalog anomalies recovered from while pricing.",
	}, []string{"kind"})
	reg.MustRegister(duration, total, anomalies)
	return &QuoteMetrics{
		duration:  duration,
		total:     total,
		anomalies: anomalies,
	}
}

// ObserveDuration records how long a calculation took.
func (q *QuoteMetrics) ObserveDuration(context string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(context)).Observe(duration.Seconds())
}

// IncOutcome counts one calculation result.
func (q *QuoteMetrics) IncOutcome(context, outcome string) {
	if q == nil || q.total == nil {
		return
	}
	q.total.WithLabelValues(normalizeLabel(context), normalizeLabel(outcome)).Inc()
}

// IncAnomaly counts one recovered catalog anomaly.
func (q *QuoteMetrics) IncAnomaly(kind string) {
	if q == nil || q.anomalies == nil {
		return
	}
	q.anomalies.WithLabelValues(normalizeLabel(kind)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
