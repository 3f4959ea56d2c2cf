// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"context"
	"time"

	"github.com/tomtom215/holonet/internal/models"
)

// Directory is the catalog-backed read side used by the starship and pilot
// endpoints. *directory.Directory implements it.
type Directory interface {
	ListStarships(ctx context.Context) (*models.StarshipPage, error)
	GetStarship(ctx context.Context, name string) (*models.StarshipDetail, error)
	ListPilots(ctx context.Context) ([]models.Pilot, error)
	GetPilot(ctx context.Context, name string) (*models.Pilot, error)
}

// RecordStore holds the locally mutable starship records.
// *store.StarshipStore implements it.
type RecordStore interface {
	Update(record models.StarshipRecord) (models.StarshipRecord, error)
	Get(name string) (models.StarshipRecord, error)
	List() []models.StarshipRecord
}

// HandlerConfig holds handler behaviour switches.
type HandlerConfig struct {
	// MaskStarshipLookupErrors reports catalog failures on
	// GET /starships/details/{name} as 404 "Starship not found" instead of 500.
	MaskStarshipLookupErrors bool

	// Version is reported by GET /health.
	Version string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing and path helpers
//   - handlers_starships.go: catalog starship endpoints and the record update
//   - handlers_pilots.go: pilot endpoints
//   - handlers_records.go: local record reads
//   - handlers_health.go: liveness
type Handler struct {
	directory Directory
	store     RecordStore
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// Example:
//
//	handler := api.NewHandler(dir, store.NewStarshipStore(store.DefaultSeed()...), api.HandlerConfig{})
//	router := api.NewRouter(handler, api.RouterConfig{})
//	http.ListenAndServe(":8000", router.SetupChi())
func NewHandler(dir Directory, records RecordStore, cfg HandlerConfig) *Handler {
	if cfg.Version == "" {
		cfg.Version = "dev"
	}
	return &Handler{
		directory: dir,
		store:     records,
		config:    cfg,
		startTime: time.Now(),
	}
}
