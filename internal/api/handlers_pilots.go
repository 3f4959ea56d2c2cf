// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/holonet/internal/directory"
	"github.com/tomtom215/holonet/internal/models"
)

// ListPilots godoc
// @Summary List pilots
// @Description Walks every catalog people page and returns the people who fly at least one starship, fully enriched.
// @Tags Pilots
// @Produce json
// @Success 200 {object} models.PilotList
// @Failure 500 {object} models.ErrorDetail "Error fetching pilots from SWAPI"
// @Router /pilots [get]
func (h *Handler) ListPilots(w http.ResponseWriter, r *http.Request) {
	pilots, err := h.directory.ListPilots(r.Context())
	if err != nil {
		respondUpstreamError(w, r, http.StatusInternalServerError, DetailPilotsUpstream, err)
		return
	}
	if pilots == nil {
		pilots = []models.Pilot{}
	}
	respondJSON(w, http.StatusOK, models.PilotList{Pilots: pilots})
}

// GetPilotDetails godoc
// @Summary Get pilot details
// @Description Searches the catalog by name, requires an exact case-insensitive match that flies at least one starship, and returns it enriched.
// @Tags Pilots
// @Produce json
// @Param name path string true "Pilot name"
// @Success 200 {object} models.Pilot
// @Failure 404 {object} models.ErrorDetail "Pilot not found or has no starships."
// @Failure 500 {object} models.ErrorDetail "Failed to connect to SWAPI."
// @Router /pilots/details/{name} [get]
func (h *Handler) GetPilotDetails(w http.ResponseWriter, r *http.Request) {
	pilot, err := h.directory.GetPilot(r.Context(), pathName(r))
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, pilot)
	case errors.Is(err, directory.ErrPilotNotFound):
		respondDetail(w, http.StatusNotFound, DetailPilotNotFound)
	default:
		respondUpstreamError(w, r, http.StatusInternalServerError, DetailPilotUpstream, err)
	}
}
