// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"context"
	"net/http"
	"sync"
)

// ErrorHandler writes the response for a failed request. The api package
// supplies the classifier-backed implementation.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// RequestState carries values discovered deep in the pipeline back out to
// the stages that wrap it. The request logger installs one per request;
// the body decoder fills it.
type RequestState struct {
	mu     sync.Mutex
	userID string
}

// SetUserID records the submitted user id.
func (s *RequestState) SetUserID(id string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.userID = id
	s.mu.Unlock()
}

// UserID returns the recorded user id, or "" if none was seen.
func (s *RequestState) UserID() string {
	if s == nil {
		return ""
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

const (
	requestStateKey contextKey = "request_state"
	bodyKey         contextKey = "decoded_body"
)

// ContextWithRequestState attaches a fresh RequestState to ctx.
func ContextWithRequestState(ctx context.Context) (context.Context, *RequestState) {
	st := &RequestState{}
	return context.WithValue(ctx, requestStateKey, st), st
}

// StateFromContext returns the request's state holder, or nil.
func StateFromContext(ctx context.Context) *RequestState {
	st, _ := ctx.Value(requestStateKey).(*RequestState)
	return st
}

// ContextWithBody stores a decoded request body.
func ContextWithBody(ctx context.Context, body map[string]any) context.Context {
	return context.WithValue(ctx, bodyKey, body)
}

// BodyFromContext returns the decoded request body, or nil when the request
// carried none.
func BodyFromContext(ctx context.Context) map[string]any {
	body, _ := ctx.Value(bodyKey).(map[string]any)
	return body
}

// UserIDFromRequest returns the user id seen for r, or "anonymous".
func UserIDFromRequest(r *http.Request) string {
	if id := StateFromContext(r.Context()).UserID(); id != "" {
		return id
	}
	if id, ok := BodyFromContext(r.Context())["userId"].(string); ok && id != "" {
		return id
	}
	return "anonymous"
}
