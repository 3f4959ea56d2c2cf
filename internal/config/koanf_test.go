// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points CONFIG_PATH at a missing file and clears every mapped
// variable so the host environment cannot leak into a load.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	for key := range envMappings {
		name := strings.ToUpper(key)
		if _, ok := os.LookupEnv(name); ok {
			t.Setenv(name, "")
			os.Unsetenv(name)
		}
	}
	// A stray config.yaml in the working directory would shadow the defaults.
	t.Chdir(t.TempDir())
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Upstream.BaseURL != DefaultBaseURL {
		t.Errorf("Upstream.BaseURL = %q, want %q", cfg.Upstream.BaseURL, DefaultBaseURL)
	}
	if cfg.Upstream.Timeout != 0 {
		t.Errorf("Upstream.Timeout = %v, want 0 (no client timeout)", cfg.Upstream.Timeout)
	}
	if cfg.Upstream.MaxPages != 0 {
		t.Errorf("Upstream.MaxPages = %d, want 0 (unbounded)", cfg.Upstream.MaxPages)
	}
	if cfg.Upstream.EnrichmentConcurrency != 4 {
		t.Errorf("Upstream.EnrichmentConcurrency = %d, want 4", cfg.Upstream.EnrichmentConcurrency)
	}
	if cfg.Upstream.CircuitBreaker.Enabled {
		t.Error("Upstream.CircuitBreaker.Enabled should be false by default")
	}
	if cfg.Security.RateLimitEnabled {
		t.Error("Security.RateLimitEnabled should be false by default")
	}
	if cfg.API.StarshipLookupMasksUpstreamErrors {
		t.Error("API.StarshipLookupMasksUpstreamErrors should be false by default")
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v, want enabled at /metrics", cfg.Metrics)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Upstream
		{"SWAPI_BASE_URL", "upstream.base_url"},
		{"SWAPI_MAX_PAGES", "upstream.max_pages"},
		{"SWAPI_ENRICHMENT_CONCURRENCY", "upstream.enrichment_concurrency"},
		{"CIRCUIT_BREAKER_ENABLED", "upstream.circuit_breaker.enabled"},
		{"CIRCUIT_BREAKER_FAILURE_RATIO", "upstream.circuit_breaker.failure_ratio"},

		// Server
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"http_shutdown_timeout", "server.shutdown_timeout"},

		// API and security
		{"STARSHIP_LOOKUP_MASKS_UPSTREAM_ERRORS", "api.starship_lookup_masks_upstream_errors"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_ENABLED", "security.rate_limit_enabled"},

		// Logging
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("CONFIG_PATH wins when the file exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		t.Setenv(ConfigPathEnvVar, path)

		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})

	t.Run("missing CONFIG_PATH falls through to defaults", func(t *testing.T) {
		isolateEnv(t)

		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})
}

func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SWAPI_BASE_URL", "http://catalog.test:8080/api")
	t.Setenv("SWAPI_MAX_PAGES", "3")
	t.Setenv("SWAPI_TIMEOUT", "5s")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Upstream.BaseURL != "http://catalog.test:8080/api" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.MaxPages != 3 {
		t.Errorf("Upstream.MaxPages = %d, want 3", cfg.Upstream.MaxPages)
	}
	if cfg.Upstream.Timeout != 5*time.Second {
		t.Errorf("Upstream.Timeout = %v, want 5s", cfg.Upstream.Timeout)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "http://b.test" {
		t.Errorf("Security.CORSOrigins = %v, want [http://a.test http://b.test]", cfg.Security.CORSOrigins)
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Upstream.EnrichmentConcurrency != 4 {
		t.Errorf("Upstream.EnrichmentConcurrency = %d, want 4 (default)", cfg.Upstream.EnrichmentConcurrency)
	}
}

func TestLoadWithKoanfConfigFile(t *testing.T) {
	isolateEnv(t)

	configContent := `
upstream:
  base_url: "https://mirror.test/api"
  enrichment_concurrency: 1
  circuit_breaker:
    enabled: true
    failure_ratio: 0.5

server:
  port: 8888
  host: "127.0.0.1"

api:
  starship_lookup_masks_upstream_errors: true

logging:
  level: "warn"
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Upstream.BaseURL != "https://mirror.test/api" {
		t.Errorf("Upstream.BaseURL = %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.EnrichmentConcurrency != 1 {
		t.Errorf("Upstream.EnrichmentConcurrency = %d, want 1", cfg.Upstream.EnrichmentConcurrency)
	}
	if !cfg.Upstream.CircuitBreaker.Enabled || cfg.Upstream.CircuitBreaker.FailureRatio != 0.5 {
		t.Errorf("Upstream.CircuitBreaker = %+v", cfg.Upstream.CircuitBreaker)
	}
	// Breaker fields absent from the file keep their defaults
	if cfg.Upstream.CircuitBreaker.MaxRequests != 3 {
		t.Errorf("CircuitBreaker.MaxRequests = %d, want 3 (default)", cfg.Upstream.CircuitBreaker.MaxRequests)
	}
	if !cfg.API.StarshipLookupMasksUpstreamErrors {
		t.Error("API.StarshipLookupMasksUpstreamErrors = false, want true")
	}
	if cfg.Server.Port != 8888 || cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server = %s, want 127.0.0.1:8888", cfg.Server.Addr())
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: 8888\nlogging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("HTTP_PORT", "7000")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Server.Port = %d, want 7000 (env overrides file)", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (from file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "defaults are valid",
			envVars: map[string]string{},
			wantErr: false,
		},
		{
			name:    "base URL must be http or https",
			envVars: map[string]string{"SWAPI_BASE_URL": "ftp://catalog.test/api"},
			wantErr: true,
			errMsg:  "SWAPI_BASE_URL is invalid",
		},
		{
			name:    "negative page cap",
			envVars: map[string]string{"SWAPI_MAX_PAGES": "-1"},
			wantErr: true,
			errMsg:  "SWAPI_MAX_PAGES",
		},
		{
			name:    "zero enrichment concurrency",
			envVars: map[string]string{"SWAPI_ENRICHMENT_CONCURRENCY": "0"},
			wantErr: true,
			errMsg:  "SWAPI_ENRICHMENT_CONCURRENCY",
		},
		{
			name:    "breaker failure ratio above one",
			envVars: map[string]string{"CIRCUIT_BREAKER_ENABLED": "true", "CIRCUIT_BREAKER_FAILURE_RATIO": "1.5"},
			wantErr: true,
			errMsg:  "CIRCUIT_BREAKER_FAILURE_RATIO",
		},
		{
			name:    "rate limit enabled without requests",
			envVars: map[string]string{"RATE_LIMIT_ENABLED": "true", "RATE_LIMIT_REQS": "0"},
			wantErr: true,
			errMsg:  "RATE_LIMIT_REQS",
		},
		{
			name:    "unknown log format",
			envVars: map[string]string{"LOG_FORMAT": "xml"},
			wantErr: true,
			errMsg:  "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadWithKoanf() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.errMsg)
			}
		})
	}
}
