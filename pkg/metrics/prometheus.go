// Package metrics provides Prometheus metrics for the MGA training tracker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the tracker service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Extraction pipeline metrics
	documentsLoaded    prometheus.Counter
	documentLoadErrors prometheus.Counter
	extractionDuration prometheus.Histogram
	recordsExtracted   prometheus.Counter
	linesClassified    *prometheus.CounterVec

	// Store snapshot metrics
	storedRecords prometheus.Gauge
	storedPeople  prometheus.Gauge

	// HTTP performance metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mga",
		subsystem:        "tracker",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.documentsLoaded = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "documents_loaded_total",
		Help:      "Number of documents successfully extracted and stored.",
	})
	m.documentLoadErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "document_load_errors_total",
		Help:      "Number of documents rejected as unreadable or oversized.",
	})
	m.extractionDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "extraction_duration_ms",
		Help:      "Duration of one extraction pass in milliseconds.",
		Buckets:   m.histogramBuckets,
	})
	m.recordsExtracted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_extracted_total",
		Help:      "Number of training records emitted by the extractor.",
	})
	m.linesClassified = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "lines_classified_total",
		Help:      "Number of classified lines by classification kind.",
	}, []string{"kind"})

	m.storedRecords = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stored_records",
		Help:      "Number of records in the current store snapshot.",
	})
	m.storedPeople = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stored_people",
		Help:      "Number of distinct persons in the current store snapshot.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request duration in milliseconds.",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})

	return m
}

// GetRegistry returns the registry served on /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordDocumentLoaded increments the loaded-documents counter.
func RecordDocumentLoaded() {
	if globalManager.enabled {
		globalManager.documentsLoaded.Inc()
	}
}

// RecordDocumentLoadError increments the rejected-documents counter.
func RecordDocumentLoadError() {
	if globalManager.enabled {
		globalManager.documentLoadErrors.Inc()
	}
}

// ObserveExtractionDuration records one extraction pass duration.
func ObserveExtractionDuration(ms float64) {
	if globalManager.enabled {
		globalManager.extractionDuration.Observe(ms)
	}
}

// RecordRecordsExtracted adds n to the extracted-records counter.
func RecordRecordsExtracted(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.recordsExtracted.Add(float64(n))
	}
}

// RecordLinesClassified adds n to the classified-lines counter for kind.
func RecordLinesClassified(kind string, n int) {
	if globalManager.enabled && n > 0 {
		globalManager.linesClassified.WithLabelValues(kind).Add(float64(n))
	}
}

// UpdateStoredRecords sets the stored-records gauge.
func UpdateStoredRecords(n int) {
	if globalManager.enabled {
		globalManager.storedRecords.Set(float64(n))
	}
}

// UpdatePeopleCount sets the stored-people gauge.
func UpdatePeopleCount(n int) {
	if globalManager.enabled {
		globalManager.storedPeople.Set(float64(n))
	}
}

// RecordHTTPRequest increments the request counter.
func RecordHTTPRequest(endpoint, method, status string) {
	if globalManager.enabled {
		globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	}
}

// RecordHTTPRequestDuration records one request duration.
func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	if globalManager.enabled {
		globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
	}
}
