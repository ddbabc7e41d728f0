package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every collector exported by the service.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	BackendCallsTotal   *prometheus.CounterVec
	BackendCallDuration *prometheus.HistogramVec
	GridRefreshTotal    *prometheus.CounterVec
	SkippedRecordsTotal *prometheus.CounterVec
	WatchedGrids        prometheus.Gauge
}

// New registers the collectors on a dedicated registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BackendCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "arena_api_calls_total",
			Help:        "Calls to the arena backend API",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),
		BackendCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "arena_api_call_duration_seconds",
			Help:        "Latency of arena backend API calls",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		GridRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_grid_refresh_total",
			Help:        "Slot grid refreshes by trigger and result",
			ConstLabels: constLabels,
		}, []string{"reason", "result"}),
		SkippedRecordsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "resolver_skipped_records_total",
			Help:        "Malformed records skipped by the slot resolvers",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		WatchedGrids: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "slot_grid_watched",
			Help:        "Number of slot grids kept fresh by the refresher",
			ConstLabels: constLabels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendCallsTotal,
		m.BackendCallDuration,
		m.GridRefreshTotal,
		m.SkippedRecordsTotal,
		m.WatchedGrids,
	)

	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveBackendCall records one backend call. Safe on a nil receiver.
func (m *Metrics) ObserveBackendCall(operation string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.BackendCallsTotal.WithLabelValues(operation, result).Inc()
	m.BackendCallDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// ObserveRefresh records one grid refresh. Safe on a nil receiver.
func (m *Metrics) ObserveRefresh(reason string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.GridRefreshTotal.WithLabelValues(reason, result).Inc()
}

// SkippedRecord counts one malformed record. Safe on a nil receiver.
func (m *Metrics) SkippedRecord(kind string) {
	if m == nil {
		return
	}
	m.SkippedRecordsTotal.WithLabelValues(kind).Inc()
}

// SetWatchedGrids updates the watched grids gauge. Safe on a nil receiver.
func (m *Metrics) SetWatchedGrids(n int) {
	if m == nil {
		return
	}
	m.WatchedGrids.Set(float64(n))
}
