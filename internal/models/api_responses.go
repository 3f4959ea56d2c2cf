// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package models

// ErrorDetail is the body of every 404 and 500 response.
//
// Example:
//
//	{"detail": "Pilot not found or has no starships."}
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// ValidationErrorResponse is the body of a 422 response. Each issue names
// the offending location, e.g. ["body", "crew_capacity"].
//
// Example:
//
//	{
//	  "detail": [
//	    {"loc": ["body", "model"], "msg": "field required", "type": "value_error.missing"}
//	  ]
//	}
type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

// ValidationIssue describes one rejected request field.
type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// StarshipUpdateResponse is the body of a successful PUT /starships/update.
type StarshipUpdateResponse struct {
	Message string         `json:"message"`
	Data    StarshipRecord `json:"data"`
}

// StarshipRecordList is the body of GET /starships/records.
type StarshipRecordList struct {
	Records []StarshipRecord `json:"records"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
