package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics коллектор метрик сервиса.
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	upstreamDuration    *prometheus.HistogramVec
	searchOutcomes      *prometheus.CounterVec
	bookingSubmissions  *prometheus.CounterVec
	stepRedirects       *prometheus.CounterVec
}

// New создаёт коллектор со своим реестром
func New(serviceName string) *Metrics {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: registry,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		upstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "villa_api_request_duration_seconds",
			Help:        "Latency of calls to the villa API",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation", "outcome"}),
		searchOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_searches_total",
			Help:        "Availability searches by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		bookingSubmissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_submissions_total",
			Help:        "Booking submissions by outcome",
			ConstLabels: labels,
		}, []string{"outcome"}),
		stepRedirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_step_redirects_total",
			Help:        "Guarded step entries redirected because of missing draft state",
			ConstLabels: labels,
		}, []string{"step"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.upstreamDuration,
		m.searchOutcomes,
		m.bookingSubmissions,
		m.stepRedirects,
	)

	return m
}

// Handler HTTP-обработчик для /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry реестр метрик (для тестов)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveHTTPRequest учитывает HTTP-запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveUpstream учитывает вызов внешнего API
func (m *Metrics) ObserveUpstream(operation, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(operation, outcome).Observe(duration.Seconds())
}

// IncSearch учитывает исход поиска доступности
func (m *Metrics) IncSearch(outcome string) {
	if m == nil {
		return
	}
	m.searchOutcomes.WithLabelValues(outcome).Inc()
}

// IncBookingSubmission учитывает исход отправки бронирования
func (m *Metrics) IncBookingSubmission(outcome string) {
	if m == nil {
		return
	}
	m.bookingSubmissions.WithLabelValues(outcome).Inc()
}

// IncStepRedirect учитывает редирект защищённого шага
func (m *Metrics) IncStepRedirect(step string) {
	if m == nil {
		return
	}
	m.stepRedirects.WithLabelValues(step).Inc()
}
