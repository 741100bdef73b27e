package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Report outcomes recorded in the result label.
const (
	resultSuccess     = "success"
	resultUnsupported = "unsupported"
	resultFailed      = "failed"
)

// unknownFormat labels requests for unregistered formats, keeping label
// cardinality bounded by the registry.
const unknownFormat = "unknown"

// Metrics holds the Prometheus collectors of the report API.
type Metrics struct {
	registry *prometheus.Registry

	reportsTotal   *prometheus.CounterVec
	reportDuration *prometheus.HistogramVec
	reportSize     *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a dedicated registry, together with
// the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "txreport_reports_total",
			Help: "Number of report requests by format and result.",
		}, []string{"format", "result"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "txreport_report_duration_seconds",
			Help:    "Time spent generating reports.",
			Buckets: prometheus.DefBuckets,
		}, []string{"format"}),
		reportSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "txreport_report_size_bytes",
			Help:    "Size of generated reports.",
			Buckets: prometheus.ExponentialBuckets(256, 4, 10),
		}, []string{"format"}),
	}

	m.registry.MustRegister(
		m.reportsTotal,
		m.reportDuration,
		m.reportSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler returns the HTTP handler serving the metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// observeUnsupported records a request for an unregistered format.
func (m *Metrics) observeUnsupported() {
	m.reportsTotal.WithLabelValues(unknownFormat, resultUnsupported).Inc()
}

// observeFailure records a failed generation.
func (m *Metrics) observeFailure(format string, elapsed time.Duration) {
	m.reportsTotal.WithLabelValues(format, resultFailed).Inc()
	m.reportDuration.WithLabelValues(format).Observe(elapsed.Seconds())
}

// observeSuccess records a generated report.
func (m *Metrics) observeSuccess(format string, elapsed time.Duration, size int) {
	m.reportsTotal.WithLabelValues(format, resultSuccess).Inc()
	m.reportDuration.WithLabelValues(format).Observe(elapsed.Seconds())
	m.reportSize.WithLabelValues(format).Observe(float64(size))
}
