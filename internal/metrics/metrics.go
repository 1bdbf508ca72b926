package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the dashboard's Prometheus instruments.
type Metrics struct {
	fetchTotal    *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	recordsLoaded prometheus.Gauge
	chartRequests *prometheus.CounterVec
}

// New registers the dashboard collectors with reg and returns the handle
// used to record values.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetchTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "naep_dataset_fetch_total",
				Help: "Dataset fetch attempts by outcome",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "naep_dataset_fetch_duration_seconds",
				Help:    "Time spent fetching and parsing the dataset",
				Buckets: prometheus.DefBuckets,
			},
		),
		recordsLoaded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "naep_dataset_records_loaded",
				Help: "Score records in the current snapshot",
			},
		),
		chartRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "naep_chart_requests_total",
				Help: "Chart option requests by renderer and result",
			},
			[]string{"renderer", "result"},
		),
	}
	reg.MustRegister(m.fetchTotal, m.fetchDuration, m.recordsLoaded, m.chartRequests)
	return m
}

func (m *Metrics) ObserveFetch(outcome string, d time.Duration) {
	m.fetchTotal.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(d.Seconds())
}

func (m *Metrics) SetRecordsLoaded(n int) {
	m.recordsLoaded.Set(float64(n))
}

func (m *Metrics) RecordChartRequest(renderer, result string) {
	m.chartRequests.WithLabelValues(renderer, result).Inc()
}
