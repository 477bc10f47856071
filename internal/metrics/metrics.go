// SPDX-License-Identifier: MIT

// Package metrics exposes engine activity as Prometheus series.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/graphd/engine"
)

const namespace = "graphd"

// Metrics implements engine.Observer and carries the HTTP series.
type Metrics struct {
	reg *prometheus.Registry

	OperationDuration *prometheus.HistogramVec
	OperationErrors   *prometheus.CounterVec
	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
	HTTPRequests      *prometheus.CounterVec
	RateLimited       prometheus.Counter
}

// New registers every series on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		OperationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_seconds",
			Help:      "Time spent in engine operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		OperationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_errors_total",
			Help:      "Engine operations that returned an error, by kind.",
		}, []string{"op", "kind"}),
		GraphVertices: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_vertices",
			Help:      "Order of the active graph.",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Size of the active graph.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}),
	}
}

// ObserveOperation implements engine.Observer.
func (m *Metrics) ObserveOperation(op string, elapsed time.Duration, err error) {
	m.OperationDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		m.OperationErrors.WithLabelValues(op, errorKind(err)).Inc()
	}
}

// ObserveGraph implements engine.Observer.
func (m *Metrics) ObserveGraph(order, size int) {
	m.GraphVertices.Set(float64(order))
	m.GraphEdges.Set(float64(size))
}

// ObserveRequest counts one served request.
func (m *Metrics) ObserveRequest(route string, code int) {
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Gatherer returns the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrVertexNotFound):
		return "not_found"
	case errors.Is(err, engine.ErrVertexExists):
		return "exists"
	case errors.Is(err, engine.ErrNoPath):
		return "no_path"
	case errors.Is(err, engine.ErrNotEulerian):
		return "not_eulerian"
	case errors.Is(err, engine.ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}

var _ engine.Observer = (*Metrics)(nil)
