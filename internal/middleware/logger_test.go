// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"bufio"
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/creativepathway/internal/logging"
)

// captureLogs routes the global logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := logging.Logger()
	var buf bytes.Buffer
	logging.SetLogger(logging.NewTestLogger(&buf))
	t.Cleanup(func() { logging.SetLogger(prev) })
	return &buf
}

// logLines decodes every JSON line in buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("invalid log line %q: %v", sc.Text(), err)
		}
		out = append(out, m)
	}
	return out
}

func findLog(lines []map[string]any, message string) map[string]any {
	for _, m := range lines {
		if m["message"] == message {
			return m
		}
	}
	return nil
}

func TestRequestLogger_Success(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health?probe=1", nil)
	req.RemoteAddr = "198.51.100.7:51234"
	req.Header.Set("User-Agent", "probe/1.0")
	handler(httptest.NewRecorder(), req)

	lines := logLines(t, buf)
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %d", len(lines))
	}
	m := lines[0]
	want := map[string]any{
		"level":     "info",
		"message":   "Request completed",
		"method":    http.MethodGet,
		"url":       "/health?probe=1",
		"status":    float64(200),
		"ip":        "198.51.100.7",
		"userAgent": "probe/1.0",
		"userId":    "anonymous",
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v, want %v", k, m[k], v)
		}
	}
	if d, _ := m["duration"].(string); !strings.HasSuffix(d, "ms") {
		t.Errorf("duration = %q, want a millisecond string", d)
	}
}

func TestRequestLogger_ErrorStatusWarns(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestLogger(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/docs", nil))

	m := findLog(logLines(t, buf), "Request completed with error")
	if m == nil {
		t.Fatal("expected a warn line for a 429")
	}
	if m["level"] != "warn" || m["status"] != float64(429) {
		t.Errorf("level/status = %v/%v, want warn/429", m["level"], m["status"])
	}
}

func TestRequestLogger_UserIDFromBodyDecoder(t *testing.T) {
	buf := captureLogs(t)

	noop := func(http.ResponseWriter, *http.Request) {}
	handler := RequestLogger(BodyDecoder(DefaultMaxBodyBytes, failTest(t))(noop))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/behavioral-data",
		strings.NewReader(`{"userId":"abc123","type":"general"}`))
	req.Header.Set("Content-Type", "application/json")
	handler(httptest.NewRecorder(), req)

	m := findLog(logLines(t, buf), "Request completed")
	if m == nil {
		t.Fatal("missing request log line")
	}
	if m["userId"] != "abc123" {
		t.Errorf("userId = %v, want abc123", m["userId"])
	}
}

func TestRequestLogger_CarriesRequestID(t *testing.T) {
	buf := captureLogs(t)

	handler := RequestID(RequestLogger(func(http.ResponseWriter, *http.Request) {}))
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(HeaderRequestID, "trace-me")
	handler(httptest.NewRecorder(), req)

	m := findLog(logLines(t, buf), "Request completed")
	if m == nil || m["request_id"] != "trace-me" {
		t.Errorf("request_id = %v, want trace-me", m["request_id"])
	}
}

func TestRequestLogger_PanicLogged(t *testing.T) {
	buf := captureLogs(t)

	var errorUser string
	onError := func(w http.ResponseWriter, r *http.Request, _ error) {
		errorUser = UserIDFromRequest(r)
		w.WriteHeader(http.StatusInternalServerError)
	}
	handler := RequestLogger(Recoverer(onError)(BodyDecoder(DefaultMaxBodyBytes, failTest(t))(
		func(http.ResponseWriter, *http.Request) {
			panic("boom")
		})))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/behavioral-data",
		strings.NewReader(`{"userId":"alice_01"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("code = %d, want recovered 500", rec.Code)
	}
	if errorUser != "alice_01" {
		t.Errorf("error handler saw userId %q, want alice_01", errorUser)
	}
	m := findLog(logLines(t, buf), "Request completed with error")
	if m == nil || m["status"] != float64(500) || m["userId"] != "alice_01" {
		t.Errorf("expected request logged with status 500 and userId alice_01, got %v", m)
	}
}

func TestUserIDFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := UserIDFromRequest(req); got != "anonymous" {
		t.Errorf("no state: got %q, want anonymous", got)
	}

	ctx, state := ContextWithRequestState(req.Context())
	state.SetUserID("p-42")
	if got := UserIDFromRequest(req.WithContext(ctx)); got != "p-42" {
		t.Errorf("with state: got %q, want p-42", got)
	}

	ctx = ContextWithBody(req.Context(), map[string]any{"userId": "from-body"})
	if got := UserIDFromRequest(req.WithContext(ctx)); got != "from-body" {
		t.Errorf("from body: got %q, want from-body", got)
	}

	var nilState *RequestState
	nilState.SetUserID("ignored")
	if nilState.UserID() != "" {
		t.Error("nil state should report no user")
	}
}
