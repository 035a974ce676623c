package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	queriesTotal   *prometheus.CounterVec
	fallbacksTotal *prometheus.CounterVec
	sentiment      *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
}

// New creates a recorder registered on the default registry.
func New() *Recorder {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates a recorder registered on reg. Tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		queriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whaleeye_queries_total",
				Help: "Total number of analysis queries by endpoint and query type",
			},
			[]string{"endpoint", "type"},
		),
		fallbacksTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whaleeye_fallbacks_total",
				Help: "Total number of times a provider was replaced by fixture data",
			},
			[]string{"provider", "reason"},
		),
		sentiment: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whaleeye_news_sentiment_total",
				Help: "Overall news sentiment verdicts",
			},
			[]string{"sentiment"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "whaleeye_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "whaleeye_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordQuery counts a query served by endpoint, classified as queryType.
func (r *Recorder) RecordQuery(endpoint, queryType string) {
	r.queriesTotal.WithLabelValues(endpoint, queryType).Inc()
}

// RecordFallback counts a switch to fixture data.
func (r *Recorder) RecordFallback(provider, reason string) {
	r.fallbacksTotal.WithLabelValues(provider, reason).Inc()
}

// RecordSentiment counts an overall sentiment verdict.
func (r *Recorder) RecordSentiment(sentiment string) {
	r.sentiment.WithLabelValues(sentiment).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
