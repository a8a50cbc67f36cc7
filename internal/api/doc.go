// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package api provides the HTTP layer for CreativePathway.

Routes:

	GET  /health                    health policy
	GET  /api/docs                  api policy
	POST /api/v1/behavioral-data    api policy + behavioral_data policy
	GET  /metrics                   no limiter (when metrics are enabled)
	GET  /swagger/*                 no limiter (outside production, when enabled)

Anything else, including a known path with the wrong method, is answered
with a NotFoundError envelope. Limiters apply by path prefix: /health/...,
/api/... and /api/v1/behavioral-data/... are charged whatever the method and
whether or not a route matches.

Key Components:

  - Router: chi route table and the fixed middleware order (see SetupChi)
  - Handler: the three endpoint handlers
  - ErrorResponder: terminal stage for every failure; logs once, records the
    error metric and writes the envelope
  - CORS: go-chi/cors with an origin allow list; rejected origins are logged

Response Shapes:

Successful responses are endpoint specific. Failures use the envelope

	{"success": false, "error": {"type", "message", "timestamp", "stack"?, "details"?, "retryAfter"?}}

with two exceptions kept for client compatibility: schema validation
failures on the submission route return

	{"success": false, "error": "Validation failed", "details": [...], "timestamp"}

and limiter rejections return {"success": false, "error", "retryAfter", "timestamp"}.

Usage Example:

	limits := cfg.RateLimitSet()
	router := api.NewRouter(cfg, limits)
	srv := &http.Server{Addr: cfg.Addr(), Handler: router.SetupChi()}
*/
package api
