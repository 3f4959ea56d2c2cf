// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

/*
Package models defines the data structures shared by the catalog client,
the directories and the HTTP layer.

Model Categories:

 1. Catalog Models (what SWAPI serves):
    - SWAPIPage[T]: a collection or search page with its next cursor
    - SWAPIStarship, SWAPIPerson, SWAPINamedResource

 2. View Models (what HoloNet serves):
    - StarshipSummary / StarshipPage: list view of the first catalog page
    - StarshipDetail: detail view with crew, passenger and cargo capacity
    - Pilot / PilotStarship / PilotList: enriched pilots

 3. Local Records:
    - StarshipRecord: the in-memory mutable starship record

 4. API Responses:
    - ErrorDetail, ValidationErrorResponse, StarshipUpdateResponse, HealthResponse

Catalog values are carried as *string and never coerced, so "unknown" and
"n/a" survive the round trip and a missing key becomes null.
*/
package models
