// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package swapi

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/metrics"
	"github.com/tomtom215/holonet/internal/models"
)

// Ensure CircuitBreakerClient implements Catalog
var _ Catalog = (*CircuitBreakerClient)(nil)

// CircuitBreakerSettings configures the catalog circuit breaker.
type CircuitBreakerSettings struct {
	Name         string
	MaxRequests  uint32        // requests allowed through while half-open
	Interval     time.Duration // closed-state window after which counts reset
	Timeout      time.Duration // open-state duration before probing
	MinRequests  uint32        // requests in the window before the ratio is considered
	FailureRatio float64       // failure ratio that opens the circuit
}

// DefaultCircuitBreakerSettings returns the breaker defaults:
// 3 half-open probes, 1 minute window, 2 minute open timeout, and a 60%
// failure rate over at least 10 requests to trip.
func DefaultCircuitBreakerSettings() CircuitBreakerSettings {
	return CircuitBreakerSettings{
		Name:         "swapi-catalog",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// CircuitBreakerClient wraps a Catalog with the circuit breaker pattern.
// While open, calls fail immediately with gobreaker.ErrOpenState instead of
// reaching the catalog. Nothing is retried.
type CircuitBreakerClient struct {
	catalog Catalog
	cb      *gobreaker.CircuitBreaker[interface{}]
	name    string
}

// NewCircuitBreakerClient wraps catalog with a circuit breaker
func NewCircuitBreakerClient(catalog Catalog, settings CircuitBreakerSettings) *CircuitBreakerClient {
	name := settings.Name
	if name == "" {
		name = DefaultCircuitBreakerSettings().Name
	}
	logger := logging.WithComponent("circuit_breaker")

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= settings.FailureRatio
			if shouldTrip {
				logger.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("Opening SWAPI circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("SWAPI circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},

		// A caller hanging up says nothing about catalog health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &CircuitBreakerClient{catalog: catalog, cb: cb, name: name}
}

// State returns the current breaker state.
func (cbc *CircuitBreakerClient) State() gobreaker.State {
	return cbc.cb.State()
}

// execute wraps a catalog call with circuit breaker protection
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	return result, nil
}

// castResult converts the untyped breaker result back to *T
func castResult[T any](result interface{}, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	typed, ok := result.(*T)
	if !ok {
		return nil, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// ListStarships fetches the first starship page with circuit breaker protection
func (cbc *CircuitBreakerClient) ListStarships(ctx context.Context) (*models.SWAPIPage[models.SWAPIStarship], error) {
	return castResult[models.SWAPIPage[models.SWAPIStarship]](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.ListStarships(ctx)
	}))
}

// SearchStarships searches starships with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchStarships(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIStarship], error) {
	return castResult[models.SWAPIPage[models.SWAPIStarship]](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.SearchStarships(ctx, query)
	}))
}

// ListPeople fetches one people page with circuit breaker protection
func (cbc *CircuitBreakerClient) ListPeople(ctx context.Context, pageURL string) (*models.SWAPIPage[models.SWAPIPerson], error) {
	return castResult[models.SWAPIPage[models.SWAPIPerson]](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.ListPeople(ctx, pageURL)
	}))
}

// SearchPeople searches people with circuit breaker protection
func (cbc *CircuitBreakerClient) SearchPeople(ctx context.Context, query string) (*models.SWAPIPage[models.SWAPIPerson], error) {
	return castResult[models.SWAPIPage[models.SWAPIPerson]](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.SearchPeople(ctx, query)
	}))
}

// GetSpecies fetches a species resource with circuit breaker protection
func (cbc *CircuitBreakerClient) GetSpecies(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error) {
	return castResult[models.SWAPINamedResource](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.GetSpecies(ctx, resourceURL)
	}))
}

// GetPlanet fetches a planet resource with circuit breaker protection
func (cbc *CircuitBreakerClient) GetPlanet(ctx context.Context, resourceURL string) (*models.SWAPINamedResource, error) {
	return castResult[models.SWAPINamedResource](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.GetPlanet(ctx, resourceURL)
	}))
}

// GetStarship fetches a starship resource with circuit breaker protection
func (cbc *CircuitBreakerClient) GetStarship(ctx context.Context, resourceURL string) (*models.SWAPIStarship, error) {
	return castResult[models.SWAPIStarship](cbc.execute(func() (interface{}, error) {
		return cbc.catalog.GetStarship(ctx, resourceURL)
	}))
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
