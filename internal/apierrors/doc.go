// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package apierrors defines the closed set of error kinds the API can return and
builds the uniform JSON error envelope for them.

Every failure that reaches the HTTP layer is either an *Error (constructed by
one of the kind-specific helpers below) or an arbitrary Go error. Arbitrary
errors classify as InternalServerError. Dispatch is by Kind, never by type
switch on concrete error structs:

	err := apierrors.NotFound("Endpoint")
	env := apierrors.BuildEnvelope(err, apierrors.EnvelopeOptions{Production: cfg.IsProduction()})
	// env.Error.Type == "NotFoundError", status 404

Envelope shape:

	{
	  "success": false,
	  "error": {
	    "type": "ValidationError",
	    "message": "...",
	    "timestamp": "2026-01-01T00:00:00Z",
	    "stack": "...",        // non-production only
	    "details": [...],      // non-production only
	    "retryAfter": 60       // RateLimitError only
	  }
	}

In production mode the message of any 5xx error is replaced with
"Internal server error". 4xx messages always pass through because they
describe caller-fixable conditions.
*/
package apierrors
