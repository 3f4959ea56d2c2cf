// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package swapi is the HTTP client for the SWAPI Star Wars reference catalog.

The catalog is read-only and serves JSON over plain GET requests. This package
fetches collections, searches and referenced resources, decodes them into the
wire types in internal/models, and reports failures as Go errors. It performs
no projection or enrichment; that lives in internal/directory.

Key Components:

  - Catalog: the interface the directories depend on
  - Client: single-attempt HTTP implementation (no caching, no retries)
  - CircuitBreakerClient: optional gobreaker wrapper around any Catalog
  - StatusError: non-2xx catalog response with status and body excerpt

Error Semantics:

  - Non-2xx response: *StatusError (use StatusCodeOf to read the status)
  - Transport failure: wrapped net/http error, "swapi <resource> request failed"
  - Malformed body: wrapped decode error, "failed to decode swapi <resource> response"
  - Open circuit: gobreaker.ErrOpenState, returned without contacting the catalog

Usage Example:

	client := swapi.NewClient(swapi.ClientConfig{
	    BaseURL:   cfg.Upstream.BaseURL,
	    Timeout:   cfg.Upstream.Timeout,
	    UserAgent: cfg.Upstream.UserAgent,
	})

	var catalog swapi.Catalog = client
	if cfg.Upstream.CircuitBreaker.Enabled {
	    catalog = swapi.NewCircuitBreakerClient(client, settings)
	}

	page, err := catalog.ListStarships(ctx)

Thread Safety:

Client and CircuitBreakerClient are safe for concurrent use. Every call
honors the caller's context, so a cancelled request aborts its catalog call.

Observability:

Each round trip is counted in holonet_upstream_requests_total by resource and
outcome, and timed in holonet_upstream_request_duration_seconds.
*/
package swapi
