// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package apierrors

import (
	"net/http"
	"time"
)

// GenericInternalMessage replaces 5xx messages in production.
const GenericInternalMessage = "Internal server error"

// Envelope is the uniform error response body.
type Envelope struct {
	Success bool         `json:"success"`
	Error   EnvelopeBody `json:"error"`
}

// EnvelopeBody is the "error" object of an Envelope.
type EnvelopeBody struct {
	Type       string      `json:"type"`
	Message    string      `json:"message"`
	Timestamp  string      `json:"timestamp"`
	Stack      string      `json:"stack,omitempty"`
	Details    interface{} `json:"details,omitempty"`
	RetryAfter int         `json:"retryAfter,omitempty"`
}

// EnvelopeOptions controls environment-dependent envelope content.
type EnvelopeOptions struct {
	// Production hides 5xx messages, stacks and details.
	Production bool

	// Now overrides the timestamp source (tests).
	Now func() time.Time
}

// BuildEnvelope classifies err and renders the envelope together with the
// HTTP status that should accompany it.
func BuildEnvelope(err error, opts EnvelopeOptions) (int, Envelope) {
	apiErr := Classify(err)
	if apiErr == nil {
		apiErr = Internal(nil)
	}
	status := apiErr.StatusCode()

	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	body := EnvelopeBody{
		Type:      apiErr.Kind.String(),
		Message:   messageFor(apiErr, status, opts.Production),
		Timestamp: now().UTC().Format(time.RFC3339Nano),
	}

	if !opts.Production {
		body.Stack = apiErr.Stack()
		if apiErr.Details != nil {
			body.Details = apiErr.Details
		}
	}

	if apiErr.Kind == KindRateLimit {
		body.RetryAfter = apiErr.RetryAfter
		if body.RetryAfter <= 0 {
			body.RetryAfter = DefaultRetryAfter
		}
	}

	return status, Envelope{Success: false, Error: body}
}

func messageFor(e *Error, status int, production bool) string {
	if production && status >= http.StatusInternalServerError {
		return GenericInternalMessage
	}
	if e.Message == "" {
		return "An error occurred"
	}
	return e.Message
}
