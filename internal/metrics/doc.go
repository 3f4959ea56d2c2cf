// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry through promauto and
are exposed by the router at METRICS_PATH (default /metrics):

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - holonet_api_requests_total{method, endpoint, status_code}
  - holonet_api_request_duration_seconds{method, endpoint}
  - holonet_api_active_requests

Upstream Metrics:
  - holonet_upstream_requests_total{resource, outcome}
  - holonet_upstream_request_duration_seconds{resource}
  - holonet_upstream_pages_walked_total
  - holonet_pilot_enrichments_total{outcome}

Circuit Breaker Metrics (only move when the breaker is enabled):
  - holonet_circuit_breaker_state{name}
  - holonet_circuit_breaker_requests_total{name, result}
  - holonet_circuit_breaker_state_transitions_total{name, from_state, to_state}

Local Records:
  - holonet_starship_updates_total{outcome}

# Testing

Tests read collectors with prometheus/testutil and compare deltas, since the
default registry is shared across the test binary.
*/
package metrics
