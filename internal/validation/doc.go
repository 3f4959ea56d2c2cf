// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator and translates field errors into
// the 422 issue list returned by the API:
//
//	{"detail": [{"loc": ["body", "model"], "msg": "field required", "type": "value_error.missing"}]}
//
// Field names are read from json tags, so issue locations name the request
// body keys rather than Go field names.
//
// # Quick Start
//
//	type StarshipUpdateRequest struct {
//	    Name          *string `json:"name" validate:"required"`
//	    CostInCredits *int    `json:"cost_in_credits" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondJSON(w, http.StatusUnprocessableEntity, verr.ToResponse())
//	    return
//	}
//
// Required scalar fields are declared as pointers so that an absent key (nil)
// is distinguishable from a zero value, which is accepted.
//
// # Thread Safety
//
// GetValidator and ValidateStruct are safe for concurrent use; the validator
// caches struct metadata after first use.
package validation
