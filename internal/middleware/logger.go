// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/tomtom215/creativepathway/internal/logging"
)

// RequestLogger emits one log line per request once the response is
// complete: info for statuses below 400, warn otherwise. It installs the
// request state holder that later stages use to report the submitting
// user.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx, _ := ContextWithRequestState(r.Context())
		r = r.WithContext(ctx)
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rec := recover(); rec != nil {
				// no recoverer below this stage; net/http aborts the connection
				logRequest(r, http.StatusInternalServerError, time.Since(start))
				panic(rec)
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			logRequest(r, status, time.Since(start))
		}()

		next(ww, r)
	}
}

func logRequest(r *http.Request, status int, elapsed time.Duration) {
	logger := logging.Ctx(r.Context())

	var event *zerolog.Event
	msg := "Request completed"
	if status >= http.StatusBadRequest {
		event = logger.Warn()
		msg = "Request completed with error"
	} else {
		event = logger.Info()
	}

	event.
		Str("method", r.Method).
		Str("url", r.URL.RequestURI()).
		Int("status", status).
		Str("duration", strconv.FormatInt(elapsed.Milliseconds(), 10)+"ms").
		Str("ip", ClientIP(r)).
		Str("userAgent", r.UserAgent()).
		Str("userId", UserIDFromRequest(r)).
		Msg(msg)
}
