// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/holonet/internal/metrics"
	"github.com/tomtom215/holonet/internal/models"
)

// enrichPilot resolves the species, homeworld and craft referenced by person.
//
// Lookups run concurrently, bounded by the directory's enrichment
// concurrency. The first failure cancels the remaining lookups and no pilot
// is returned. Craft are written by reference index, so the output order
// never depends on completion order.
func (d *Directory) enrichPilot(ctx context.Context, person *models.SWAPIPerson) (*models.Pilot, error) {
	pilot := models.NewPilot(person)
	ships := make([]models.PilotStarship, len(person.Starships))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.concurrency)

	if len(person.Species) > 0 {
		speciesURL := person.Species[0]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			species, err := d.catalog.GetSpecies(gctx, speciesURL)
			if err != nil {
				return err
			}
			pilot.SpeciesName = species.Name
			return nil
		})
	}

	if person.Homeworld != nil && *person.Homeworld != "" {
		homeworldURL := *person.Homeworld
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			planet, err := d.catalog.GetPlanet(gctx, homeworldURL)
			if err != nil {
				return err
			}
			pilot.Homeworld = planet.Name
			return nil
		})
	}

	for i, shipURL := range person.Starships {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ship, err := d.catalog.GetStarship(gctx, shipURL)
			if err != nil {
				return err
			}
			ships[i] = models.PilotStarship{Name: ship.Name, Model: ship.Model}
			return nil
		})
	}

	err := g.Wait()
	metrics.RecordPilotEnrichment(err)
	if err != nil {
		return nil, upstreamError("enrich pilot "+person.PersonName(), err)
	}

	pilot.Starships = ships
	return &pilot, nil
}
