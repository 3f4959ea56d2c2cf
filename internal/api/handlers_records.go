// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"net/http"

	"github.com/tomtom215/holonet/internal/models"
)

// ListStarshipRecords godoc
// @Summary List local starship records
// @Description Returns every locally held starship record sorted by name.
// @Tags Records
// @Produce json
// @Success 200 {object} models.StarshipRecordList
// @Router /starships/records [get]
func (h *Handler) ListStarshipRecords(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.StarshipRecordList{Records: h.store.List()})
}

// GetStarshipRecord godoc
// @Summary Get a local starship record
// @Tags Records
// @Produce json
// @Param name path string true "Starship name"
// @Success 200 {object} models.StarshipRecord
// @Failure 404 {object} models.ErrorDetail "Starship not found"
// @Router /starships/records/{name} [get]
func (h *Handler) GetStarshipRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Get(pathName(r))
	if err != nil {
		respondDetail(w, http.StatusNotFound, DetailStarshipNotFound)
		return
	}
	respondJSON(w, http.StatusOK, record)
}
