// Package metrics holds the prometheus collectors shared by the HTTP
// middleware, the invoice service and the websocket hub.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled HTTP requests.
	// Labels: method, route (gin full path), status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoiceflow",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	// RequestDuration measures handler latency.
	// Labels: method, route
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "invoiceflow",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	// TransitionsTotal counts recorded status changes.
	// Labels: from, to
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoiceflow",
		Subsystem: "workflow",
		Name:      "transitions_total",
		Help:      "Total invoice status transitions",
	}, []string{"from", "to"})

	// AuditFailures counts audit entries that could not be written.
	AuditFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "invoiceflow",
		Subsystem: "audit",
		Name:      "write_failures_total",
		Help:      "Audit entries dropped because the store write failed",
	})

	// WebsocketClients tracks currently connected subscribers.
	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "invoiceflow",
		Subsystem: "websocket",
		Name:      "clients",
		Help:      "Connected websocket clients",
	})

	// EventsDropped counts change events discarded because a buffer was full.
	// Labels: stage (hub, client)
	EventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "invoiceflow",
		Subsystem: "websocket",
		Name:      "events_dropped_total",
		Help:      "Change events dropped on a full buffer",
	}, []string{"stage"})
)

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
