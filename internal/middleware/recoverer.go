// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/creativepathway/internal/apierrors"
	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
)

// Recoverer converts a handler panic into an internal error and passes it
// to onError. http.ErrAbortHandler is re-raised so net/http can abort the
// connection as intended.
func Recoverer(onError ErrorHandler) func(http.HandlerFunc) http.HandlerFunc {
	security := logging.NewSecurityLogger()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}
				metrics.RecordPanic()
				security.LogEvent(&logging.SecurityEvent{
					Event:     logging.EventPanicRecovered,
					IPAddress: ClientIP(r),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
				})

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				onError(w, r, apierrors.Internal(fmt.Errorf("panic: %w", err)))
			}()

			next(w, r)
		}
	}
}
