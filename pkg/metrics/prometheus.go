package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	analyses    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	outliers    *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analyses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricescope_analyses_total",
				Help: "Total number of outlier analyses run",
			},
			[]string{"method", "symbol"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricescope_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		outliers: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pricescope_last_outlier_count",
				Help: "Outlier count of the most recent analysis for a symbol",
			},
			[]string{"symbol"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricescope_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysis records a completed analysis.
func (r *Recorder) RecordAnalysis(method, symbol string) {
	r.analyses.WithLabelValues(method, symbol).Inc()
}

// RecordOutliers records the outlier count of the latest analysis.
func (r *Recorder) RecordOutliers(symbol string, count int) {
	r.outliers.WithLabelValues(symbol).Set(float64(count))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
