// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package main is the entry point for the HoloNet server application.

HoloNet is a small aggregation gateway in front of SWAPI, the public Star Wars
reference catalog. It projects starships into fixed views, walks the people
collection to build enriched pilot records, and keeps a local set of mutable
starship records.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("holonet")
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: SWAPI HTTP client, optionally behind a gobreaker circuit breaker
 4. Directory: starship projection and pilot enrichment over the catalog
 5. Store: in-memory starship records seeded with the Millennium Falcon
 6. HTTP: chi router with request ID, access log, CORS, rate limit and metrics
 7. Supervisor Tree: Suture v4 process supervision

# Configuration

Common environment variables:

	HTTP_PORT                     listen port (default 8000)
	SWAPI_BASE_URL                catalog root (default https://swapi.py4e.com/api)
	SWAPI_TIMEOUT                 per-request timeout, 0 for none
	SWAPI_MAX_PAGES               cap on the pilot walk, 0 for unbounded
	SWAPI_ENRICHMENT_CONCURRENCY  concurrent sub-lookups per pilot (default 4)
	LOG_LEVEL, LOG_FORMAT         zerolog level and json|console
	CONFIG_PATH                   optional YAML file

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within server.shutdown_timeout;
services that fail to stop in time are reported before exit.

# Example Usage

	export SWAPI_BASE_URL=https://swapi.py4e.com/api
	export LOG_FORMAT=console
	./holonet

	curl localhost:8000/pilots/details/Luke%20Skywalker
*/
package main
