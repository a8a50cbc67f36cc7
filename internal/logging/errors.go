// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package logging

import (
	"context"
	"errors"
)

// ErrorFields describes the request an error was raised for.
type ErrorFields struct {
	Type      string
	Status    int
	Method    string
	Path      string
	IP        string
	UserAgent string
	UserID    string
}

type stackTracer interface {
	Stack() string
}

// LogError writes one error-level record for a failed request. The full
// message and stack are always logged, whatever the environment.
func LogError(ctx context.Context, err error, f ErrorFields) {
	if err == nil {
		return
	}

	e := Ctx(ctx).Error().Err(err)
	if f.Type != "" {
		e = e.Str("type", f.Type)
	}
	if f.Status != 0 {
		e = e.Int("status", f.Status)
	}

	var st stackTracer
	if errors.As(err, &st) {
		if s := st.Stack(); s != "" {
			e = e.Str("stack", s)
		}
	}

	userID := f.UserID
	if userID == "" {
		userID = "anonymous"
	}

	e.Str("method", f.Method).
		Str("url", f.Path).
		Str("ip", f.IP).
		Str("userAgent", truncateString(f.UserAgent, 200)).
		Str("userId", userID).
		Msg("Application error occurred")
}
