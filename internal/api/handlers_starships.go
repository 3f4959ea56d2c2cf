// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/holonet/internal/directory"
	"github.com/tomtom215/holonet/internal/logging"
	"github.com/tomtom215/holonet/internal/metrics"
	"github.com/tomtom215/holonet/internal/models"
	"github.com/tomtom215/holonet/internal/store"
	"github.com/tomtom215/holonet/internal/validation"
)

// maxUpdateBodyBytes bounds the PUT /starships/update body.
const maxUpdateBodyBytes = 1 << 20

// ListStarships godoc
// @Summary List starships
// @Description Returns the first catalog page of starships projected to the list view.
// @Tags Starships
// @Produce json
// @Success 200 {object} models.StarshipPage
// @Failure 500 {object} models.ErrorDetail "Error fetching starships from SWAPI"
// @Router /starships [get]
func (h *Handler) ListStarships(w http.ResponseWriter, r *http.Request) {
	page, err := h.directory.ListStarships(r.Context())
	if err != nil {
		respondUpstreamError(w, r, http.StatusInternalServerError, DetailStarshipsUpstream, err)
		return
	}
	respondJSON(w, http.StatusOK, page)
}

// GetStarshipDetails godoc
// @Summary Get starship details
// @Description Searches the catalog by name and returns the first match in the detail view.
// @Tags Starships
// @Produce json
// @Param name path string true "Starship name"
// @Success 200 {object} models.StarshipDetail
// @Failure 404 {object} models.ErrorDetail "Starship not found"
// @Failure 500 {object} models.ErrorDetail "Error fetching starships from SWAPI"
// @Router /starships/details/{name} [get]
func (h *Handler) GetStarshipDetails(w http.ResponseWriter, r *http.Request) {
	detail, err := h.directory.GetStarship(r.Context(), pathName(r))
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, detail)
	case errors.Is(err, directory.ErrStarshipNotFound):
		respondDetail(w, http.StatusNotFound, DetailStarshipNotFound)
	case h.config.MaskStarshipLookupErrors:
		respondUpstreamError(w, r, http.StatusNotFound, DetailStarshipNotFound, err)
	default:
		respondUpstreamError(w, r, http.StatusInternalServerError, DetailStarshipsUpstream, err)
	}
}

// UpdateStarship godoc
// @Summary Replace a starship record
// @Description Fully replaces the locally held record whose name matches the body. Unknown names are rejected.
// @Tags Starships
// @Accept json
// @Produce json
// @Param record body StarshipUpdateRequest true "Complete starship record"
// @Success 200 {object} models.StarshipUpdateResponse
// @Failure 404 {object} models.ErrorDetail "Starship not found"
// @Failure 422 {object} models.ValidationErrorResponse
// @Router /starships/update [put]
func (h *Handler) UpdateStarship(w http.ResponseWriter, r *http.Request) {
	var req StarshipUpdateRequest
	raw, verr := readUpdateBody(r)
	if verr == nil {
		verr = validation.Merge(decodeUpdateFields(raw, &req), validation.ValidateStruct(&req))
	}
	if verr != nil {
		metrics.RecordStarshipUpdate("invalid")
		respondJSON(w, http.StatusUnprocessableEntity, verr.ToResponse())
		return
	}

	record, err := h.store.Update(req.ToRecord())
	if err != nil {
		if errors.Is(err, store.ErrStarshipNotFound) {
			metrics.RecordStarshipUpdate("not_found")
			respondDetail(w, http.StatusNotFound, DetailStarshipNotFound)
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Starship update failed")
		respondDetail(w, http.StatusInternalServerError, DetailInternal)
		return
	}

	metrics.RecordStarshipUpdate("updated")
	logging.Ctx(r.Context()).Info().
		Str("starship", sanitizeLogValue(record.Name)).
		Msg("Starship record replaced")

	respondJSON(w, http.StatusOK, models.StarshipUpdateResponse{
		Message: "Starship updated successfully",
		Data:    record,
	})
}

// readUpdateBody reads the body as a JSON object keyed by field. Failures
// here concern the body as a whole.
func readUpdateBody(r *http.Request) (map[string]json.RawMessage, *validation.RequestValidationError) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxUpdateBodyBytes+1))
	if err != nil {
		return nil, validation.NewFieldError("", "could not read request body", validation.TypeJSON)
	}
	if len(body) > maxUpdateBodyBytes {
		return nil, validation.NewFieldError("", "request body too large", validation.TypeGeneric)
	}
	if len(body) == 0 {
		return nil, validation.NewFieldError("", "field required", validation.TypeMissing)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, validation.NewFieldError("", "Expecting object: "+err.Error(), validation.TypeJSON)
	}
	return raw, nil
}

// decodeUpdateFields decodes raw into req one field at a time, so every
// mistyped field is reported as a 422 issue under its own name.
func decodeUpdateFields(raw map[string]json.RawMessage, req *StarshipUpdateRequest) *validation.RequestValidationError {
	var issues []*validation.RequestValidationError
	v := reflect.ValueOf(req).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		value, ok := raw[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			msg, kind := typeIssue(t.Field(i).Type)
			issues = append(issues, validation.NewFieldError(key, msg, kind))
		}
	}
	return validation.Merge(issues...)
}

// typeIssue names the expected JSON type for a mistyped field.
func typeIssue(t reflect.Type) (string, string) {
	if t == nil {
		return "invalid value", validation.TypeGeneric
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "value is not a valid integer", validation.TypeInteger
	case reflect.String:
		return "str type expected", validation.TypeString
	case reflect.Slice:
		return "value is not a valid list", validation.TypeList
	default:
		return "invalid value", validation.TypeGeneric
	}
}
