// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestKind_StatusAndName(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		status int
	}{
		{KindValidation, "ValidationError", http.StatusBadRequest},
		{KindAuthentication, "AuthenticationError", http.StatusUnauthorized},
		{KindAuthorization, "AuthorizationError", http.StatusForbidden},
		{KindNotFound, "NotFoundError", http.StatusNotFound},
		{KindConflict, "ConflictError", http.StatusConflict},
		{KindPayloadTooLarge, "PayloadTooLargeError", http.StatusRequestEntityTooLarge},
		{KindRateLimit, "RateLimitError", http.StatusTooManyRequests},
		{KindInternal, "InternalServerError", http.StatusInternalServerError},
		{Kind(99), "InternalServerError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.Status(); got != tt.status {
				t.Errorf("Status() = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestConstructors_DefaultMessages(t *testing.T) {
	if got := NotFound("Endpoint").Message; got != "Endpoint not found" {
		t.Errorf("NotFound message = %q", got)
	}
	if got := NotFound("").Message; got != "Resource not found" {
		t.Errorf("NotFound empty message = %q", got)
	}
	if got := Authentication("").Message; got != "Authentication required" {
		t.Errorf("Authentication message = %q", got)
	}
	if got := Authorization("").Message; got != "Insufficient permissions" {
		t.Errorf("Authorization message = %q", got)
	}
	if got := Conflict("").Message; got != "Resource conflict" {
		t.Errorf("Conflict message = %q", got)
	}
	if got := RateLimit("", 0).Message; got != "Rate limit exceeded" {
		t.Errorf("RateLimit message = %q", got)
	}
}

func TestClassify(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if Classify(nil) != nil {
			t.Error("Classify(nil) should be nil")
		}
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		e := Classify(errors.New("disk on fire"))
		if e.Kind != KindInternal {
			t.Errorf("Kind = %v, want internal", e.Kind)
		}
		if e.StatusCode() != http.StatusInternalServerError {
			t.Errorf("StatusCode = %d", e.StatusCode())
		}
		if e.Message != "disk on fire" {
			t.Errorf("Message = %q", e.Message)
		}
		if e.Stack() == "" {
			t.Error("expected captured stack")
		}
	})

	t.Run("wrapped api error keeps kind", func(t *testing.T) {
		wrapped := fmt.Errorf("handler: %w", NotFound("Endpoint"))
		e := Classify(wrapped)
		if e.Kind != KindNotFound {
			t.Errorf("Kind = %v, want not found", e.Kind)
		}
	})

	t.Run("status override", func(t *testing.T) {
		e := &Error{Kind: KindValidation, Status: http.StatusUnprocessableEntity}
		if e.StatusCode() != http.StatusUnprocessableEntity {
			t.Errorf("StatusCode = %d", e.StatusCode())
		}
	})
}

func TestError_UnwrapAndMessage(t *testing.T) {
	cause := errors.New("boom")
	e := Internal(cause)
	if !errors.Is(e, cause) {
		t.Error("errors.Is should find the cause")
	}
	if e.Error() != "boom" {
		t.Errorf("Error() = %q, want boom", e.Error())
	}

	v := Validation("Validation failed", nil)
	v.Cause = cause
	if !strings.Contains(v.Error(), "boom") {
		t.Errorf("Error() = %q, should include cause", v.Error())
	}
}

func fixedNow() time.Time {
	return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestBuildEnvelope_InternalDefaults500(t *testing.T) {
	original := errors.New("connection refused to 10.0.0.5")

	t.Run("production redacts", func(t *testing.T) {
		status, env := BuildEnvelope(original, EnvelopeOptions{Production: true, Now: fixedNow})
		if status != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", status)
		}
		if env.Success {
			t.Error("success should be false")
		}
		if env.Error.Message != GenericInternalMessage {
			t.Errorf("message = %q, want %q", env.Error.Message, GenericInternalMessage)
		}
		if env.Error.Stack != "" {
			t.Error("stack must not be present in production")
		}
		if env.Error.Type != "InternalServerError" {
			t.Errorf("type = %q", env.Error.Type)
		}
		if env.Error.Timestamp != "2026-01-02T03:04:05Z" {
			t.Errorf("timestamp = %q", env.Error.Timestamp)
		}
	})

	t.Run("development exposes", func(t *testing.T) {
		status, env := BuildEnvelope(original, EnvelopeOptions{Production: false})
		if status != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", status)
		}
		if env.Error.Message != original.Error() {
			t.Errorf("message = %q, want original", env.Error.Message)
		}
		if env.Error.Stack == "" {
			t.Error("stack should be present outside production")
		}
	})
}

func TestBuildEnvelope_ClientErrorsNeverRedacted(t *testing.T) {
	details := []map[string]string{{"field": "userId"}}
	status, env := BuildEnvelope(Validation("Validation failed", details), EnvelopeOptions{Production: true})

	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if env.Error.Message != "Validation failed" {
		t.Errorf("message = %q", env.Error.Message)
	}
	if env.Error.Details != nil {
		t.Error("details are a non-production field")
	}

	_, dev := BuildEnvelope(Validation("Validation failed", details), EnvelopeOptions{})
	if dev.Error.Details == nil {
		t.Error("details should be present outside production")
	}
}

func TestBuildEnvelope_RateLimitRetryAfter(t *testing.T) {
	_, env := BuildEnvelope(RateLimit("slow down", 0), EnvelopeOptions{Production: true})
	if env.Error.RetryAfter != DefaultRetryAfter {
		t.Errorf("retryAfter = %d, want %d", env.Error.RetryAfter, DefaultRetryAfter)
	}

	status, env := BuildEnvelope(RateLimit("slow down", 12), EnvelopeOptions{})
	if status != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", status)
	}
	if env.Error.RetryAfter != 12 {
		t.Errorf("retryAfter = %d, want 12", env.Error.RetryAfter)
	}

	_, notFound := BuildEnvelope(NotFound("Endpoint"), EnvelopeOptions{})
	if notFound.Error.RetryAfter != 0 {
		t.Error("retryAfter only applies to rate limit errors")
	}
}
