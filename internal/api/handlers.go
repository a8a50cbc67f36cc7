// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"time"

	"github.com/tomtom215/creativepathway/internal/config"
	"github.com/tomtom215/creativepathway/internal/ratelimit"
)

// ResearchCitation names the model the service collects data for.
const ResearchCitation = "Park et al. (2017) Implementation"

// Handler serves the API endpoints. It holds no per-request state.
type Handler struct {
	config    *config.Config
	limits    *ratelimit.Set
	startTime time.Time
	now       func() time.Time
}

// NewHandler creates a handler reporting on the given config and limiter
// budgets. Uptime is measured from this call.
func NewHandler(cfg *config.Config, limits *ratelimit.Set) *Handler {
	return &Handler{
		config:    cfg,
		limits:    limits,
		startTime: time.Now(),
		now:       time.Now,
	}
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
