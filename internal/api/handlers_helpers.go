// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/models"
	"github.com/tomtom215/holonet/internal/swapi"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"` + DetailInternal + `"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondDetail sends a {"detail": message} error body.
func respondDetail(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorDetail{Detail: message})
}

// respondUpstreamError logs a catalog failure with request context and
// sends the fixed message. A caller that hung up is logged at info.
func respondUpstreamError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logger := logging.Ctx(r.Context())
	event := logger.Error()
	if errors.Is(err, context.Canceled) {
		event = logger.Info()
	}
	event.
		Str("path", sanitizeLogValue(r.URL.Path)).
		Int("upstream_status", swapi.StatusCodeOf(err)).
		Str("error", sanitizeLogValue(err.Error())).
		Msg("SWAPI request failed")

	respondDetail(w, status, message)
}

// pathName returns the {name} route parameter, percent-decoded.
// chi matches on the escaped path when the request carries one (e.g. a
// name containing %2F), so the value is decoded here in that case.
func pathName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return name
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		return decoded
	}
	return name
}
