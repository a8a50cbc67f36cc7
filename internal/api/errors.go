// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/creativepathway/internal/apierrors"
	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
	"github.com/tomtom215/creativepathway/internal/middleware"
)

// ErrorResponder is the terminal stage for every failed request. It logs
// the error once, classifies it and writes the envelope.
type ErrorResponder struct {
	production bool
	now        func() time.Time
}

// NewErrorResponder creates a responder. In production, 5xx messages are
// replaced by a generic one and stacks and details are withheld.
func NewErrorResponder(production bool) *ErrorResponder {
	return &ErrorResponder{production: production, now: time.Now}
}

// Respond writes the error envelope for err.
func (e *ErrorResponder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	apiErr := apierrors.Classify(err)
	if apiErr == nil {
		apiErr = apierrors.Internal(nil)
	}
	status := apiErr.StatusCode()

	logging.LogError(r.Context(), apiErr, logging.ErrorFields{
		Type:      apiErr.Kind.String(),
		Status:    status,
		Method:    r.Method,
		Path:      r.URL.RequestURI(),
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		UserID:    middleware.UserIDFromRequest(r),
	})
	metrics.RecordError(apiErr.Kind.String(), status)

	status, envelope := apierrors.BuildEnvelope(apiErr, apierrors.EnvelopeOptions{
		Production: e.production,
		Now:        e.now,
	})
	if apiErr.Kind == apierrors.KindRateLimit {
		w.Header().Set("Retry-After", strconv.Itoa(envelope.Error.RetryAfter))
	}
	writeJSON(w, status, envelope)
}

// NotFound answers any unmatched route.
func (e *ErrorResponder) NotFound(w http.ResponseWriter, r *http.Request) {
	e.Respond(w, r, apierrors.NotFound("Endpoint"))
}

// MethodNotAllowed answers a known path with the wrong method. The API
// reports these as unknown endpoints.
func (e *ErrorResponder) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	e.Respond(w, r, apierrors.NotFound("Endpoint"))
}
