// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package directory builds the starship and pilot views served by the API.

It reads from a swapi.Catalog and reshapes catalog records into the
simplified models in internal/models:

  - ListStarships: first catalog page, projected to the list view
  - GetStarship: first search match, projected to the detail view
  - ListPilots: every people page, persons with craft only, enriched
  - GetPilot: exact case-insensitive name match with craft, enriched

Enrichment:

A pilot's species (first listed), homeworld and every piloted craft are
resolved with one catalog call each. The calls for one person run through an
errgroup bounded by Config.EnrichmentConcurrency; the first failure cancels
the rest and the person is dropped with an error. People pages themselves
are walked strictly in sequence.

Errors:

All catalog failures are wrapped with ErrUpstream. Empty searches return
ErrStarshipNotFound or ErrPilotNotFound. Both directories return either a
complete result or an error, never a partial list.
*/
package directory
