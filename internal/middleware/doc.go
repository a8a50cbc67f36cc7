// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package middleware provides the HTTP pipeline stages shared by every route.

Each stage has the signature func(http.HandlerFunc) http.HandlerFunc; the api
package adapts them onto the chi router. Stages that can fail take an
ErrorHandler and never write failure bodies themselves.

Key Components:

  - RequestID: honours a well-formed inbound X-Request-ID or assigns a UUID,
    and seeds the logging context with request and correlation IDs
  - Recoverer: turns handler panics into internal errors
  - PrometheusMetrics: request counts and latency labelled by chi route pattern
  - RequestLogger: one line per request after the response completes, with
    the submitting user's id when the body carried one
  - SecurityHeaders: CSP, HSTS, frame and sniffing protections
  - Compression: gzip at a configurable level above a size threshold; clients
    can opt out with X-No-Compression
  - BodyDecoder: JSON and urlencoded bodies with a hard size cap

Middleware Stack:

Outermost first, as assembled by the api package:

	RequestID -> RealIP -> PrometheusMetrics -> RequestLogger -> Recoverer ->
	SecurityHeaders -> CORS -> Compression -> BodyDecoder -> rate limits -> handler

Recoverer sits inside RequestLogger so a recovered panic is logged with the
500 it produced and with the submitting user's id.

Request State:

RequestLogger sits outside the body decoder but must report the userId that
only the decoder sees. It installs a RequestState in the context; the decoder
fills it in:

	ctx, state := middleware.ContextWithRequestState(r.Context())
	// ... later, inside BodyDecoder
	middleware.StateFromContext(ctx).SetUserID(id)

Decoded bodies are available to handlers through BodyFromContext.
*/
package middleware
