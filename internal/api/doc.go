// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package api provides the HTTP surface of HoloNet.

Handlers translate directory and store results into JSON responses. They
never expose catalog failure detail to clients: every failure maps to a
fixed {"detail": "..."} body and the underlying error is logged with the
request ID.

Endpoints:

	GET  /starships                  first catalog page, list view
	GET  /starships/details/{name}   first search match, detail view
	PUT  /starships/update           full replace of a local record
	GET  /starships/records          local records, sorted by name
	GET  /starships/records/{name}   one local record
	GET  /pilots                     every person flying a starship, enriched
	GET  /pilots/details/{name}      one pilot by exact name, enriched
	GET  /health                     liveness
	GET  /metrics                    Prometheus exposition (optional)
	GET  /swagger/*                  OpenAPI UI (optional)

Error Mapping:

	directory.ErrStarshipNotFound   404 "Starship not found"
	directory.ErrPilotNotFound      404 "Pilot not found or has no starships."
	store.ErrStarshipNotFound       404 "Starship not found"
	catalog failure, starships      500 "Error fetching starships from SWAPI"
	catalog failure, pilot list     500 "Error fetching pilots from SWAPI"
	catalog failure, pilot lookup   500 "Failed to connect to SWAPI."
	malformed or invalid PUT body   422 {"detail": [{"loc", "msg", "type"}]}

With HandlerConfig.MaskStarshipLookupErrors set, a catalog failure on
GET /starships/details/{name} is reported as 404 "Starship not found".

Middleware Stack (outermost first):

  - RequestID: X-Request-ID header and logging context
  - AccessLog: one structured line per request
  - RealIP, Recoverer (chi)
  - CORS (go-chi/cors)
  - RateLimit (go-chi/httprate, opt-in), APISecurityHeaders, PrometheusMetrics

Usage Example:

	handler := api.NewHandler(dir, records, api.HandlerConfig{Version: version})
	router := api.NewRouter(handler, api.RouterConfig{MetricsEnabled: true, SwaggerEnabled: true})
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
*/
package api
