// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package config

import (
	"fmt"
	"strings"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateCircuitBreaker(); err != nil {
		return err
	}

	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	if err := c.validateMetrics(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateUpstream validates the catalog connection settings
func (c *Config) validateUpstream() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("SWAPI_BASE_URL is required")
	}
	if err := validateUpstreamURL(c.Upstream.BaseURL, "SWAPI_BASE_URL"); err != nil {
		return fmt.Errorf("SWAPI_BASE_URL is invalid: %w", err)
	}
	if c.Upstream.Timeout < 0 {
		return fmt.Errorf("SWAPI_TIMEOUT must not be negative, got %v", c.Upstream.Timeout)
	}
	if c.Upstream.MaxPages < 0 {
		return fmt.Errorf("SWAPI_MAX_PAGES must be 0 (unbounded) or positive, got %d", c.Upstream.MaxPages)
	}
	if c.Upstream.EnrichmentConcurrency < 1 {
		return fmt.Errorf("SWAPI_ENRICHMENT_CONCURRENCY must be at least 1, got %d", c.Upstream.EnrichmentConcurrency)
	}
	return nil
}

// validateCircuitBreaker validates breaker settings (only if enabled)
func (c *Config) validateCircuitBreaker() error {
	cb := c.Upstream.CircuitBreaker
	if !cb.Enabled {
		return nil
	}
	if cb.MaxRequests == 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_MAX_REQUESTS must be positive")
	}
	if cb.Timeout <= 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_TIMEOUT must be positive, got %v", cb.Timeout)
	}
	if cb.Interval < 0 {
		return fmt.Errorf("CIRCUIT_BREAKER_INTERVAL must not be negative, got %v", cb.Interval)
	}
	if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
		return fmt.Errorf("CIRCUIT_BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cb.FailureRatio)
	}
	return nil
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.IdleTimeout < 0 {
		return fmt.Errorf("HTTP timeouts must not be negative")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}

	switch strings.ToLower(c.Server.Environment) {
	case "development", "staging", "production":
		return nil
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging, or production, got %q", c.Server.Environment)
	}
}

// validateSecurity validates CORS and rate limit settings
func (c *Config) validateSecurity() error {
	if c.Security.RateLimitEnabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQS must be positive when RATE_LIMIT_ENABLED=true, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive when RATE_LIMIT_ENABLED=true, got %v", c.Security.RateLimitWindow)
		}
	}

	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			continue
		}
		if err := validateHTTPURL(origin, "CORS_ORIGINS"); err != nil {
			return err
		}
	}
	return nil
}

// validateMetrics validates the exposition path
func (c *Config) validateMetrics() error {
	if !c.Metrics.Enabled {
		return nil
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with '/', got %q", c.Metrics.Path)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

// IsProduction reports whether the gateway runs in the production environment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
