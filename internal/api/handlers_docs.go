// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"
)

var researchBasis = ResearchBasis{
	Paper: "Park, J., Kim, M., & Jang, S. (2017). Analysis of Factors Influencing " +
		"Creative Personality of Elementary School Students",
	DOI:     "10.5539/ies.v10n5p167",
	Journal: "International Education Studies",
	Volume:  10,
	Number:  5,
	Pages:   "167-180",
}

// Docs returns a static description of the API
//
// @Summary API documentation
// @Description Lists endpoints, the research basis and the active rate limit budgets
// @Tags Core
// @Produce json
// @Success 200 {object} DocsResponse
// @Router /api/docs [get]
func (h *Handler) Docs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, DocsResponse{
		Title:       "CreativePathway API Documentation",
		Version:     h.config.Server.Version,
		Description: "Real-time learning analytics API based on Park et al. (2017) research",
		BaseURL:     baseURL(r, h.config.Server.TrustProxy),
		Endpoints: map[string]string{
			"GET /health":                  "Health check endpoint",
			"GET /api/docs":                "API documentation",
			"POST /api/v1/behavioral-data": "Submit behavioral data",
		},
		ResearchBasis: researchBasis,
		RateLimits: RateLimitSummary{
			General:        h.limits.API.Policy().Describe(),
			BehavioralData: h.limits.BehavioralData.Policy().Describe(),
			Health:         h.limits.Health.Policy().Describe(),
		},
	})
}

// baseURL reconstructs scheme://host as the client addressed it.
// X-Forwarded-Proto is honoured only behind a trusted proxy.
func baseURL(r *http.Request, trustProxy bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); trustProxy && (proto == "https" || proto == "http") {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
