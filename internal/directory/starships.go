// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package directory

import (
	"context"

	"github.com/tomtom215/holonet/internal/models"
)

// ListStarships returns the first catalog page of starships in the list view.
// Later pages are not fetched; the catalog's next cursor is returned as-is.
func (d *Directory) ListStarships(ctx context.Context) (*models.StarshipPage, error) {
	page, err := d.catalog.ListStarships(ctx)
	if err != nil {
		return nil, upstreamError("list starships", err)
	}

	out := &models.StarshipPage{
		Starships: make([]models.StarshipSummary, 0, len(page.Results)),
		Next:      page.Next,
	}
	for i := range page.Results {
		out.Starships = append(out.Starships, models.NewStarshipSummary(&page.Results[i]))
	}
	return out, nil
}

// GetStarship searches the catalog by name and returns the first match in
// the detail view. The catalog search is a case-insensitive substring match.
func (d *Directory) GetStarship(ctx context.Context, name string) (*models.StarshipDetail, error) {
	page, err := d.catalog.SearchStarships(ctx, name)
	if err != nil {
		return nil, upstreamError("search starships", err)
	}
	if len(page.Results) == 0 {
		return nil, ErrStarshipNotFound
	}

	detail := models.NewStarshipDetail(&page.Results[0])
	return &detail, nil
}
