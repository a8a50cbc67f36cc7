// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRequestBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "api_request_body_bytes",
			Help:    "Size of decoded request bodies in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8), // 256B .. 4MiB
		},
	)

	// Rate Limiting Metrics
	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"policy"},
	)

	RateLimitTrackedKeys = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rate_limit_tracked_keys",
			Help: "Number of client keys with an open window",
		},
		[]string{"policy"},
	)

	RateLimitSweptKeys = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limit_swept_keys_total",
			Help: "Total number of expired windows removed by the janitor",
		},
		[]string{"policy"},
	)

	// Submission Metrics
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behavioral_submissions_total",
			Help: "Total number of accepted behavioral data submissions",
		},
		[]string{"type"},
	)

	SubmissionDataPoints = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "behavioral_submission_data_points",
			Help:    "Number of top-level data entries per accepted submission",
			Buckets: []float64{1, 2, 3, 4, 5, 6},
		},
	)

	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "behavioral_validation_failures_total",
			Help: "Total number of field-level validation failures",
		},
		[]string{"field"},
	)

	// Error Metrics
	APIErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_errors_total",
			Help: "Total number of error responses by classified type",
		},
		[]string{"type", "status_code"},
	)

	PanicsRecovered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "api_panics_recovered_total",
			Help: "Total number of handler panics converted to error responses",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRequestBody records the size of a decoded request body.
func RecordRequestBody(n int) {
	APIRequestBytes.Observe(float64(n))
}

// RecordRateLimitHit records a request rejected by the named policy.
func RecordRateLimitHit(policy string) {
	APIRateLimitHits.WithLabelValues(policy).Inc()
}

// RecordRateLimitSweep records a janitor pass for a policy.
func RecordRateLimitSweep(policy string, removed, remaining int) {
	if removed > 0 {
		RateLimitSweptKeys.WithLabelValues(policy).Add(float64(removed))
	}
	RateLimitTrackedKeys.WithLabelValues(policy).Set(float64(remaining))
}

// RecordSubmission records an accepted submission.
func RecordSubmission(submissionType string, dataPoints int) {
	SubmissionsTotal.WithLabelValues(submissionType).Inc()
	SubmissionDataPoints.Observe(float64(dataPoints))
}

// RecordValidationFailure records one failing field of a rejected submission.
func RecordValidationFailure(field string) {
	ValidationFailures.WithLabelValues(field).Inc()
}

// RecordError records an error response produced by the classifier.
func RecordError(errorType string, status int) {
	APIErrorsTotal.WithLabelValues(errorType, strconv.Itoa(status)).Inc()
}

// RecordPanic records a recovered handler panic.
func RecordPanic() {
	PanicsRecovered.Inc()
}
