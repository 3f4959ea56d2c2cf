// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - Inbound API latency and throughput
// - Outbound catalog requests and the pilot walk
// - The optional catalog circuit breaker
// - Local starship record updates

var (
	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "holonet_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}, // the pilot walk fans out across every page
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "holonet_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Upstream Catalog Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_upstream_requests_total",
			Help: "Total number of requests made to the SWAPI catalog",
		},
		[]string{"resource", "outcome"}, // outcome: "success", "status_error", "transport_error", "decode_error"
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "holonet_upstream_request_duration_seconds",
			Help:    "Duration of SWAPI catalog requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	UpstreamPagesWalked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "holonet_upstream_pages_walked_total",
			Help: "Total number of people pages fetched by the pilot listing",
		},
	)

	PilotEnrichments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_pilot_enrichments_total",
			Help: "Total number of pilot enrichments",
		},
		[]string{"outcome"}, // "success", "failure"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "holonet_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Local Record Metrics
	StarshipUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "holonet_starship_updates_total",
			Help: "Total number of starship record update attempts",
		},
		[]string{"outcome"}, // "updated", "not_found", "invalid"
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamRequest records one catalog round trip
func RecordUpstreamRequest(resource, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(resource, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(resource).Observe(duration.Seconds())
}

// RecordPageWalked counts one people page fetched by the pilot listing
func RecordPageWalked() {
	UpstreamPagesWalked.Inc()
}

// RecordPilotEnrichment records the outcome of enriching one pilot
func RecordPilotEnrichment(err error) {
	if err != nil {
		PilotEnrichments.WithLabelValues("failure").Inc()
		return
	}
	PilotEnrichments.WithLabelValues("success").Inc()
}

// RecordStarshipUpdate records the outcome of a starship record update
func RecordStarshipUpdate(outcome string) {
	StarshipUpdates.WithLabelValues(outcome).Inc()
}
