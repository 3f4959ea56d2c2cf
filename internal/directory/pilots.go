// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"context"
	"strings"

	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/metrics"
	"github.com/tomtom215/holonet/internal/models"
)

// ListPilots walks every page of the people collection and returns each
// person who pilots at least one craft, enriched, in catalog order.
//
// Pages are fetched one after another by following the next cursor. Any
// page or enrichment failure aborts the listing; partial results are never
// returned. When a page cap is configured and reached, the walk stops early
// and the pilots gathered so far are returned.
func (d *Directory) ListPilots(ctx context.Context) ([]models.Pilot, error) {
	logger := logging.Ctx(ctx)
	pilots := make([]models.Pilot, 0)

	cursor := ""
	pages := 0
	for {
		if d.maxPages > 0 && pages >= d.maxPages {
			logger.Warn().Int("max_pages", d.maxPages).Int("pilots", len(pilots)).
				Msg("Pilot listing stopped at page cap, result is truncated")
			return pilots, nil
		}

		page, err := d.catalog.ListPeople(ctx, cursor)
		if err != nil {
			return nil, upstreamError("list people", err)
		}
		pages++
		metrics.RecordPageWalked()

		for i := range page.Results {
			person := &page.Results[i]
			if !person.HasStarships() {
				continue
			}
			pilot, err := d.enrichPilot(ctx, person)
			if err != nil {
				return nil, err
			}
			pilots = append(pilots, *pilot)
		}

		if page.Next == nil || *page.Next == "" {
			break
		}
		cursor = *page.Next
	}

	logger.Debug().Int("pages", pages).Int("pilots", len(pilots)).Msg("Pilot listing completed")
	return pilots, nil
}

// GetPilot searches the catalog by name and enriches the first person whose
// name equals name case-insensitively and who pilots at least one craft.
func (d *Directory) GetPilot(ctx context.Context, name string) (*models.Pilot, error) {
	page, err := d.catalog.SearchPeople(ctx, name)
	if err != nil {
		return nil, upstreamError("search people", err)
	}

	for i := range page.Results {
		person := &page.Results[i]
		if !strings.EqualFold(person.PersonName(), name) || !person.HasStarships() {
			continue
		}
		return d.enrichPilot(ctx, person)
	}

	return nil, ErrPilotNotFound
}
