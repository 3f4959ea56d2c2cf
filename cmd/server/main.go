// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/holonet/docs" // Import generated swagger docs
	"github.com/tomtom215/holonet/internal/api"
	"github.com/tomtom215/holonet/internal/config"
	"github.com/tomtom215/holonet/internal/directory"
	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/store"
	"github.com/tomtom215/holonet/internal/supervisor"
	"github.com/tomtom215/holonet/internal/supervisor/services"
	"github.com/tomtom215/holonet/internal/swapi"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("swapi_base_url", cfg.Upstream.BaseURL).
		Int("max_pages", cfg.Upstream.MaxPages).
		Int("enrichment_concurrency", cfg.Upstream.EnrichmentConcurrency).
		Bool("circuit_breaker", cfg.Upstream.CircuitBreaker.Enabled).
		Msg("Starting HoloNet with supervisor tree")

	catalog := newCatalog(cfg)

	dir := directory.New(catalog, directory.Config{
		MaxPages:              cfg.Upstream.MaxPages,
		EnrichmentConcurrency: cfg.Upstream.EnrichmentConcurrency,
	})
	records := store.NewStarshipStore(store.DefaultSeed()...)
	logging.Info().Int("records", records.Len()).Msg("Starship store seeded")

	handler := api.NewHandler(dir, records, api.HandlerConfig{
		MaskStarshipLookupErrors: cfg.API.StarshipLookupMasksUpstreamErrors,
		Version:                  version,
	})
	router := api.NewRouter(handler, api.RouterConfig{
		Middleware: api.NewChiMiddlewareConfig(
			cfg.Security.CORSOrigins,
			cfg.Security.RateLimitEnabled,
			cfg.Security.RateLimitReqs,
			cfg.Security.RateLimitWindow,
		),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
		SwaggerEnabled: !cfg.IsProduction(),
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout

	// Bridges zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeConfig)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, tree.ShutdownTimeout()))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		cancel()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newCatalog builds the SWAPI client, wrapped in a circuit breaker when enabled.
func newCatalog(cfg *config.Config) swapi.Catalog {
	client := swapi.NewClient(swapi.ClientConfig{
		BaseURL:   cfg.Upstream.BaseURL,
		Timeout:   cfg.Upstream.Timeout,
		UserAgent: cfg.Upstream.UserAgent,
	})

	cb := cfg.Upstream.CircuitBreaker
	if !cb.Enabled {
		return client
	}

	settings := swapi.DefaultCircuitBreakerSettings()
	settings.MaxRequests = cb.MaxRequests
	settings.Interval = cb.Interval
	settings.Timeout = cb.Timeout
	settings.MinRequests = cb.MinRequests
	settings.FailureRatio = cb.FailureRatio

	logging.Info().
		Uint32("min_requests", cb.MinRequests).
		Float64("failure_ratio", cb.FailureRatio).
		Dur("open_timeout", cb.Timeout).
		Msg("SWAPI circuit breaker enabled")

	return swapi.NewCircuitBreakerClient(client, settings)
}
