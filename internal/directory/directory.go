// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"github.com/tomtom215/holonet/internal/swapi"
)

// DefaultEnrichmentConcurrency bounds the sub-lookups run for one pilot.
const DefaultEnrichmentConcurrency = 4

// Config controls how the directories walk and enrich catalog data.
type Config struct {
	// MaxPages caps the people pages walked by ListPilots. Zero means no cap.
	MaxPages int
	// EnrichmentConcurrency bounds concurrent lookups per pilot.
	// 1 resolves species, homeworld and craft strictly in sequence.
	EnrichmentConcurrency int
}

// Directory serves the starship and pilot views over a catalog.
// It holds no mutable state and is safe for concurrent use.
type Directory struct {
	catalog     swapi.Catalog
	maxPages    int
	concurrency int
}

// New creates a Directory reading from catalog.
func New(catalog swapi.Catalog, cfg Config) *Directory {
	concurrency := cfg.EnrichmentConcurrency
	if concurrency < 1 {
		concurrency = DefaultEnrichmentConcurrency
	}
	maxPages := cfg.MaxPages
	if maxPages < 0 {
		maxPages = 0
	}

	return &Directory{
		catalog:     catalog,
		maxPages:    maxPages,
		concurrency: concurrency,
	}
}
