// Package metrics provides Prometheus metrics for the form metadata service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "metaforms"

// Lookup results.
const (
	ResultFound    = "found"
	ResultNotFound = "not_found"
)

// Collector holds all Prometheus metrics of the service.
type Collector struct {
	gatherer prometheus.Gatherer

	// Request metrics
	RequestsTotal    *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Registry metrics
	Lookups         *prometheus.CounterVec
	RegistryForms   prometheus.Gauge
	RegistryModules prometheus.Gauge
}

// New creates a collector on a fresh registry that also exports Go runtime
// and process metrics.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry creates a collector registered on reg.
// Useful for testing to avoid global state.
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		gatherer: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Number of HTTP requests currently being processed",
			},
		),
		Lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "form_lookups_total",
				Help:      "Form metadata lookups by result",
			},
			[]string{"result"},
		),
		RegistryForms: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registry_forms",
				Help:      "Number of forms in the loaded registry",
			},
		),
		RegistryModules: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "registry_modules",
				Help:      "Number of navigation modules in the loaded registry",
			},
		),
	}
}

// RecordLookup counts one resolver call.
func (c *Collector) RecordLookup(found bool) {
	result := ResultNotFound
	if found {
		result = ResultFound
	}
	c.Lookups.WithLabelValues(result).Inc()
}

// ObserveRequest records a finished HTTP request.
func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	c.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// SetRegistrySize publishes the size of the loaded registry.
func (c *Collector) SetRegistrySize(forms, modules int) {
	c.RegistryForms.Set(float64(forms))
	c.RegistryModules.Set(float64(modules))
}

// Handler returns the /metrics exposition handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
