// HoloNet - Star Wars Catalog Aggregation Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/holonet

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/holonet/internal/models"
)

// Health godoc
// @Summary Liveness check
// @Description Reports that the process is serving. The catalog is not contacted.
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: h.config.Version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	})
}
