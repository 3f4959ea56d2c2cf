// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package config provides centralized configuration management for HoloNet.

Configuration is layered with Koanf v2: built-in defaults, then an optional YAML
file, then environment variables. The resulting Config is validated once and is
read-only afterwards, so it is safe to share between goroutines.

# Configuration Sources

  - Defaults: defaultConfig()
  - YAML file: CONFIG_PATH, else config.yaml / config.yml in the working
    directory, else /etc/holonet/config.yaml
  - Environment variables: an explicit mapping; unmapped variables are ignored

# Environment Variables

Upstream catalog (UpstreamConfig):
  - SWAPI_BASE_URL: Catalog root (default: https://swapi.py4e.com/api)
  - SWAPI_TIMEOUT: Per-request client timeout (default: 0, none)
  - SWAPI_MAX_PAGES: Cap on the pilot listing people walk (default: 0, unbounded)
  - SWAPI_ENRICHMENT_CONCURRENCY: Concurrent sub-lookups per pilot (default: 4)
  - SWAPI_USER_AGENT: Outbound User-Agent header
  - CIRCUIT_BREAKER_ENABLED: Wrap the client in a circuit breaker (default: false)
  - CIRCUIT_BREAKER_MAX_REQUESTS, CIRCUIT_BREAKER_INTERVAL, CIRCUIT_BREAKER_TIMEOUT,
    CIRCUIT_BREAKER_MIN_REQUESTS, CIRCUIT_BREAKER_FAILURE_RATIO

HTTP Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production (production hides /swagger)

API (APIConfig):
  - STARSHIP_LOOKUP_MASKS_UPSTREAM_ERRORS: Report catalog failures on the
    starship detail endpoint as 404 (default: false)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_ENABLED: Per-IP inbound rate limit (default: false)
  - RATE_LIMIT_REQS, RATE_LIMIT_WINDOW

Logging and metrics:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
  - METRICS_ENABLED, METRICS_PATH

# Usage Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load config")
	}
	server := &http.Server{Addr: cfg.Server.Addr()}
*/
package config
