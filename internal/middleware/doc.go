// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package middleware provides HTTP middleware components for the gateway.

Key Components:

  - RequestID: UUID-based request tracking, mirrored into the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

All three use the http.HandlerFunc signature; the api package adapts them to
chi's func(http.Handler) http.Handler form.

Middleware Stack:

The router installs them in this order:

	r.Use(chiMiddleware(middleware.RequestID))         // Layer 1: request/correlation IDs
	r.Use(chiMiddleware(middleware.AccessLog))         // Layer 2: access log
	r.Use(chimiddleware.Recoverer)                     // Layer 3: panic recovery
	r.Use(cors)                                        // Layer 4: CORS
	r.Use(rateLimit)                                   // Layer 5: optional rate limit
	r.Use(chiMiddleware(middleware.PrometheusMetrics)) // Layer 6: metrics

Metrics Labels:

PrometheusMetrics labels requests by chi route pattern, e.g.
/starships/details/{name}, so starship and pilot names never become
Prometheus label values.
*/
package middleware
