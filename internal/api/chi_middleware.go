// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/middleware"
	"github.com/tomtom215/creativepathway/internal/ratelimit"
)

// CORSConfig holds the cross-origin policy.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

// exposedHeaders are readable by browser clients on cross-origin responses.
var exposedHeaders = []string{
	ratelimit.HeaderLimit,
	ratelimit.HeaderRemaining,
	ratelimit.HeaderReset,
	ratelimit.HeaderRetryAfter,
	middleware.HeaderRequestID,
	HeaderReceiptID,
}

// newCORS builds the go-chi/cors handler. Requests without an Origin header
// (curl, mobile apps, server-to-server) pass untouched. A disallowed origin
// gets no CORS headers, so the browser blocks the response, and is logged
// as a security event.
func newCORS(cfg CORSConfig) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	wildcard := false
	for _, o := range cfg.AllowedOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}
	security := logging.NewSecurityLogger()

	return cors.Handler(cors.Options{
		AllowOriginFunc: func(r *http.Request, origin string) bool {
			if wildcard || allowed[origin] {
				return true
			}
			security.LogCORSRejected(origin, middleware.ClientIP(r), r.URL.Path)
			return false
		},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows the middleware package stages to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}
