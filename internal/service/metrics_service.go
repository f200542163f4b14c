package service

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP surface
// and the upstream catalogue fetches.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	fetchTotal      *prometheus.CounterVec
	lookupTotal     *prometheus.CounterVec
}

// NewMetricsService registers the collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	fetchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_fetch_duration_seconds",
		Help:    "Duration of upstream catalogue fetches in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"source", "outcome"})

	fetchTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_fetch_total",
		Help: "Total upstream catalogue fetches",
	}, []string{"source", "outcome"})

	lookupTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "course_lookup_total",
		Help: "Total course lookups by result",
	}, []string{"result"})

	registry.MustRegister(
		requestDuration, requestTotal, fetchDuration, fetchTotal, lookupTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		fetchDuration:   fetchDuration,
		fetchTotal:      fetchTotal,
		lookupTotal:     lookupTotal,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records one served request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, strconv.Itoa(status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// ObserveFetch records one upstream fetch.
func (s *MetricsService) ObserveFetch(source string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	s.fetchDuration.WithLabelValues(source, outcome).Observe(duration.Seconds())
	s.fetchTotal.WithLabelValues(source, outcome).Inc()
}

// ObserveLookup records one course lookup outcome.
func (s *MetricsService) ObserveLookup(result string) {
	s.lookupTotal.WithLabelValues(result).Inc()
}
