// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

// Package main provides the HoloNet HTTP server
//
// @title HoloNet API
// @version 1.0
// @description Aggregation gateway over the SWAPI Star Wars catalog.
// @description
// @description ## Features
// @description
// @description - **Starships**: first-page listing and name lookup, projected to fixed views
// @description - **Pilots**: every person who flies a starship, enriched with species, homeworld and craft
// @description - **Local records**: an in-memory starship record set with full-replace updates
// @description
// @description ## Error Responses
// @description
// @description 404 and 500 responses carry a fixed message:
// @description ```json
// @description {"detail": "Starship not found"}
// @description ```
// @description 422 responses list each rejected field:
// @description ```json
// @description {"detail": [{"loc": ["body", "model"], "msg": "field required", "type": "value_error.missing"}]}
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/holonet/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Starships
// @tag.description Catalog starships and the local record update
//
// @tag.name Pilots
// @tag.description Enriched pilots walked from the catalog people collection
//
// @tag.name Records
// @tag.description Locally held starship records
//
// @tag.name Health
// @tag.description Liveness
package main
