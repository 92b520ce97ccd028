package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookshelf"

// CountsFunc reports current collection sizes.
type CountsFunc func() (authors, books int)

// Metrics owns a private registry so tests can build independent
// instances.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	GraphQLOperations   *prometheus.CounterVec
}

func New(counts CountsFunc) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)
	m.HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	// Operation names are client-chosen, so only the kind is a label.
	m.GraphQLOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "graphql_operations_total",
			Help:      "GraphQL operations executed, by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	m.registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GraphQLOperations,
	)

	if counts != nil {
		m.registry.MustRegister(
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "authors",
				Help:      "Authors currently stored",
			}, func() float64 {
				a, _ := counts()
				return float64(a)
			}),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "books",
				Help:      "Books currently stored",
			}, func() float64 {
				_, b := counts()
				return float64(b)
			}),
		)
	}

	return m
}

// ObserveOperation counts one executed GraphQL operation.
func (m *Metrics) ObserveOperation(kind string, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	m.GraphQLOperations.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
