// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"
)

// Health handles health check requests
//
// @Summary Get service health
// @Description Reports liveness, version, environment and process uptime
// @Tags Core
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 429 {object} ratelimit.RejectionBody "Health check rate limit exceeded"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Timestamp:   h.timestamp(),
		Version:     h.config.Server.Version,
		Environment: h.config.Server.Environment,
		Uptime:      h.now().Sub(h.startTime).Seconds(),
		Research:    ResearchCitation,
	})
}
