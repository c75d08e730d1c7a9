package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Исходы операций, используются как значение label "outcome"
const (
	OutcomeApplied   = "applied"
	OutcomeStale     = "stale"
	OutcomeFailed    = "failed"
	OutcomeSucceeded = "succeeded"
	OutcomeRejected  = "rejected"
)

// Metrics набор метрик сервиса.
// Все методы безопасно вызывать на nil (метрики выключены в конфиге)
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	slotFetchesTotal          *prometheus.CounterVec
	bookingSubmissionsTotal   *prometheus.CounterVec
	publicationSubmissions    *prometheus.CounterVec
	providerLookupsTotal      *prometheus.CounterVec
	activeSessions            *prometheus.GaugeVec
	schedulerRequestsDuration *prometheus.HistogramVec
	dbQueryDuration           *prometheus.HistogramVec
}

// New создает метрики в собственном реестре (плюс go/process коллекторы)
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		registry: reg,
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		slotFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_fetches_total",
			Help:        "Slot fetches by outcome (applied, stale, failed)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		bookingSubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome (succeeded, failed, rejected)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		publicationSubmissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_publications_total",
			Help:        "Availability publications by outcome (succeeded, failed, rejected)",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		providerLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "provider_lookups_total",
			Help:        "Provider lookups by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		activeSessions: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "active_sessions",
			Help:        "Number of live in-memory sessions",
			ConstLabels: constLabels,
		}, []string{"kind"}),
		schedulerRequestsDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "scheduler_request_duration_seconds",
			Help:        "Duration of requests to the external scheduling API",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Duration of receipt journal queries",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) RecordSlotFetch(outcome string) {
	if m == nil {
		return
	}
	m.slotFetchesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordBookingSubmission(outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordPublication(outcome string) {
	if m == nil {
		return
	}
	m.publicationSubmissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordProviderLookup(outcome string) {
	if m == nil {
		return
	}
	m.providerLookupsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetActiveSessions(kind string, count int) {
	if m == nil {
		return
	}
	m.activeSessions.WithLabelValues(kind).Set(float64(count))
}

func (m *Metrics) ObserveSchedulerRequest(endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.schedulerRequestsDuration.WithLabelValues(endpoint, status).Observe(seconds)
}

func (m *Metrics) ObserveDBQuery(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(operation).Observe(seconds)
}
