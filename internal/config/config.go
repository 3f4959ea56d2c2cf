// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// config file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Configuration Categories:
//
//  1. Upstream: the SWAPI catalog base URL, client timeout, pagination cap,
//     enrichment fan-out and the optional circuit breaker
//  2. Server: HTTP listener and timeouts
//  3. API & Security: error mapping compatibility, CORS and the optional rate limiter
//  4. Observability: logging and Prometheus metrics
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	client := swapi.NewClient(swapi.ClientConfig{BaseURL: cfg.Upstream.BaseURL, Timeout: cfg.Upstream.Timeout})
type Config struct {
	Upstream UpstreamConfig `koanf:"upstream"`
	Server   ServerConfig   `koanf:"server"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
	Metrics  MetricsConfig  `koanf:"metrics"`
}

// UpstreamConfig configures access to the SWAPI catalog.
type UpstreamConfig struct {
	// BaseURL is the catalog root, e.g. https://swapi.py4e.com/api.
	BaseURL string `koanf:"base_url"`

	// Timeout bounds every outbound request. Zero means no client timeout;
	// requests are still cancelled when the inbound request goes away.
	Timeout time.Duration `koanf:"timeout"`

	// MaxPages caps the people walk used by the pilot listing. Zero walks
	// every page the catalog advertises.
	MaxPages int `koanf:"max_pages"`

	// EnrichmentConcurrency bounds the concurrent sub-lookups made while
	// enriching a single pilot. 1 resolves species, homeworld and craft in order.
	EnrichmentConcurrency int `koanf:"enrichment_concurrency"`

	// UserAgent is sent on every outbound request.
	UserAgent string `koanf:"user_agent"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig configures the optional gobreaker wrapper around the
// catalog client. Disabled by default: every call reaches the catalog.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // "development", "staging", "production"
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// APIConfig holds response mapping settings
type APIConfig struct {
	// StarshipLookupMasksUpstreamErrors reports catalog failures on the
	// starship detail endpoint as 404 "Starship not found" instead of 500.
	// Enable it for clients that expect the legacy 404.
	StarshipLookupMasksUpstreamErrors bool `koanf:"starship_lookup_masks_upstream_errors"`
}

// SecurityConfig holds CORS and inbound rate limit settings
type SecurityConfig struct {
	CORSOrigins      []string      `koanf:"cors_origins"`
	RateLimitEnabled bool          `koanf:"rate_limit_enabled"`
	RateLimitReqs    int           `koanf:"rate_limit_reqs"`
	RateLimitWindow  time.Duration `koanf:"rate_limit_window"`
}

// LoggingConfig holds logging configuration.
// Maps to internal/logging.Config for zerolog initialization.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// MetricsConfig holds Prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Path    string `koanf:"path"`
}

// Load reads configuration using the layered Koanf loader.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
