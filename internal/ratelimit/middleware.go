// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
)

// Response headers set on every request that passes through a limiter.
const (
	HeaderLimit      = "X-RateLimit-Limit"
	HeaderRemaining  = "X-RateLimit-Remaining"
	HeaderReset      = "X-RateLimit-Reset"
	HeaderRetryAfter = "Retry-After"
)

// RejectionBody is the JSON body of a 429 produced by a limiter.
type RejectionBody struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
	Timestamp  string `json:"timestamp"`
}

// Middleware enforces the limiter's policy. Rejected requests get a terminal
// 429 and never reach next.
//
//	r.With(limiter.Middleware).Post("/behavioral-data", h.SubmitBehavioralData)
func (l *Limiter) Middleware(next http.Handler) http.Handler {
	security := logging.NewSecurityLogger()
	sometimes := &rate.Sometimes{First: 1, Interval: 10 * time.Second}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, err := l.policy.KeyFunc(r)
		if err != nil || key == "" {
			key = remoteHost(r)
		}

		d := l.Check(key)
		setHeaders(w, d)

		if d.Allowed {
			next.ServeHTTP(w, r)
			return
		}

		metrics.RecordRateLimitHit(l.policy.Name)
		sometimes.Do(func() {
			security.LogRateLimitExceeded(l.policy.Name, key, r.URL.Path, d.RetryAfter)
		})

		l.writeRejection(w, d)
	})
}

func (l *Limiter) writeRejection(w http.ResponseWriter, d Decision) {
	w.Header().Set(HeaderRetryAfter, strconv.Itoa(d.RetryAfter))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	body := RejectionBody{
		Success:    false,
		Error:      l.policy.Message,
		RetryAfter: d.RetryAfter,
		Timestamp:  l.clock().UTC().Format(time.RFC3339Nano),
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error().Err(err).Str("policy", l.policy.Name).Msg("Failed to encode rate limit response")
	}
}

func setHeaders(w http.ResponseWriter, d Decision) {
	h := w.Header()
	h.Set(HeaderLimit, strconv.Itoa(d.Limit))
	h.Set(HeaderRemaining, strconv.Itoa(d.Remaining))
	h.Set(HeaderReset, strconv.FormatInt(d.ResetAt.Unix(), 10))
}

// remoteHost falls back to the connection address when the key function fails.
func remoteHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
