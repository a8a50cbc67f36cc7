// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

/*
Package metrics provides Prometheus metrics for the ingestion service.

All collectors are registered with the default registry through promauto and
exposed at /metrics when metrics are enabled:

	curl http://localhost:3000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_request_body_bytes
  - api_errors_total{type,status_code}
  - api_panics_recovered_total

Rate limiting:
  - api_rate_limit_hits_total{policy}
  - rate_limit_tracked_keys{policy}
  - rate_limit_swept_keys_total{policy}

Submissions:
  - behavioral_submissions_total{type}
  - behavioral_submission_data_points
  - behavioral_validation_failures_total{field}

Endpoint labels use the matched chi route pattern, never the raw path, to keep
cardinality bounded.
*/
package metrics
