// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

// Fixed client-facing error details. Catalog failure specifics are logged,
// never returned.
const (
	DetailStarshipsUpstream = "Error fetching starships from SWAPI"
	DetailStarshipNotFound  = "Starship not found"
	DetailPilotsUpstream    = "Error fetching pilots from SWAPI"
	DetailPilotNotFound     = "Pilot not found or has no starships."
	DetailPilotUpstream     = "Failed to connect to SWAPI."
	DetailNotFound          = "Not Found"
	DetailMethodNotAllowed  = "Method Not Allowed"
	DetailTooManyRequests   = "Too Many Requests"
	DetailInternal          = "Internal Server Error"
)
