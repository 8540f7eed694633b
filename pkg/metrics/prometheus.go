package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	panelComputes *prometheus.CounterVec
	panelDuration *prometheus.HistogramVec
	datasetHits   *prometheus.CounterVec
	datasetMisses *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		panelComputes: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storepulse_panel_computes_total",
				Help: "Total number of panel recomputations",
			},
			[]string{"panel"},
		),
		panelDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storepulse_panel_compute_duration_seconds",
				Help:    "Duration of panel recomputations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"panel"},
		),
		datasetHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storepulse_dataset_cache_hits_total",
				Help: "Dataset requests served from the memoization cache",
			},
			[]string{"dataset"},
		),
		datasetMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storepulse_dataset_cache_misses_total",
				Help: "Dataset requests that triggered generation",
			},
			[]string{"dataset"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storepulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
	}
}

// RecordPanelCompute records one panel recomputation and its duration.
func (r *Recorder) RecordPanelCompute(panel string, seconds float64) {
	r.panelComputes.WithLabelValues(panel).Inc()
	r.panelDuration.WithLabelValues(panel).Observe(seconds)
}

// RecordDatasetCacheHit records a dataset served from cache.
func (r *Recorder) RecordDatasetCacheHit(dataset string) {
	r.datasetHits.WithLabelValues(dataset).Inc()
}

// RecordDatasetCacheMiss records a dataset that had to be generated.
func (r *Recorder) RecordDatasetCacheMiss(dataset string) {
	r.datasetMisses.WithLabelValues(dataset).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}
