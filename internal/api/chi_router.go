// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/creativepathway/internal/config"
	"github.com/tomtom215/creativepathway/internal/middleware"
	"github.com/tomtom215/creativepathway/internal/ratelimit"
)

// Router wires handlers, limiters and the middleware pipeline.
type Router struct {
	config  *config.Config
	limits  *ratelimit.Set
	handler *Handler
	errors  *ErrorResponder
}

// NewRouter creates a router. limits must be non-nil even when rate
// limiting is disabled, since /api/docs reports the configured budgets.
func NewRouter(cfg *config.Config, limits *ratelimit.Set) *Router {
	return &Router{
		config:  cfg,
		limits:  limits,
		handler: NewHandler(cfg, limits),
		errors:  NewErrorResponder(cfg.IsProduction()),
	}
}

// Handler returns the endpoint handler, for callers that need its state.
func (router *Router) Handler() *Handler {
	return router.handler
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	cfg := router.config
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL requests in order, including unmatched ones
	r.Use(chiMiddleware(middleware.RequestID))
	if cfg.Server.TrustProxy {
		r.Use(chimiddleware.RealIP) // client address from X-Forwarded-For / X-Real-IP
	}
	r.Use(chiMiddleware(middleware.PrometheusMetrics))
	r.Use(chiMiddleware(middleware.RequestLogger)) // outside the limiters so 429s are logged
	// Inside the logger: the recovered 500 is logged, and the error record
	// sees the request state the body decoder fills
	r.Use(chiMiddleware(middleware.Recoverer(router.errors.Respond)))
	r.Use(chiMiddleware(middleware.SecurityHeaders))
	r.Use(newCORS(CORSConfig{
		AllowedOrigins:   cfg.AllowedOrigins(),
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           86400,
	}))
	if cfg.Compression.Enabled {
		r.Use(chiMiddleware(middleware.Compression(cfg.Compression.Level, cfg.Compression.Threshold)))
	}
	r.Use(chiMiddleware(middleware.BodyDecoder(cfg.Server.MaxBodyBytes, router.errors.Respond)))

	// Must be registered before Route() so sub-routers inherit them
	r.NotFound(router.errors.NotFound)
	r.MethodNotAllowed(router.errors.MethodNotAllowed)

	// ========================
	// Health Endpoint
	// ========================
	// Limiters are mounted on path prefixes and run before route matching,
	// so unknown sub-paths and wrong methods are charged too
	r.Route("/health", func(r chi.Router) {
		r.Use(router.limit(router.limits.Health))
		r.Get("/", router.handler.Health)
	})

	// ========================
	// API Endpoints
	// ========================
	// The general budget covers everything under /api, unknown paths included
	r.Route("/api", func(r chi.Router) {
		r.Use(router.limit(router.limits.API))

		r.Get("/docs", router.handler.Docs)
		r.Route("/v1/behavioral-data", func(r chi.Router) {
			r.Use(router.limit(router.limits.BehavioralData))
			r.Post("/", router.handler.BehavioralData)
		})
	})

	// ========================
	// Prometheus Metrics
	// ========================
	if cfg.Metrics.Enabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.Handler())
	}

	// ========================
	// Swagger UI (non-production)
	// ========================
	if cfg.SwaggerUIEnabled() {
		r.Get("/swagger/*", swaggerUI(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		)))
	}

	return r
}

// limit returns the limiter's middleware, or a pass-through when rate
// limiting is disabled.
func (router *Router) limit(l *ratelimit.Limiter) func(http.Handler) http.Handler {
	if router.config.RateLimit.Disabled || l == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return l.Middleware
}

// swaggerCSP allows the inline bootstrap script and styles of the Swagger UI page.
const swaggerCSP = "default-src 'self'; script-src 'self' 'unsafe-inline'; " +
	"style-src 'self' 'unsafe-inline'; img-src 'self' data:; object-src 'none'; frame-ancestors 'none'"

// swaggerUI replaces the API-wide policy set by SecurityHeaders for the
// explorer pages only.
func swaggerUI(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", swaggerCSP)
		next(w, r)
	}
}
