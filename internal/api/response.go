// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/validation"
)

// ValidationFailure is the 400 body for a submission that failed schema
// validation. It is flat, unlike the error envelope.
type ValidationFailure struct {
	Success   bool                    `json:"success"`
	Error     string                  `json:"error"`
	Details   []validation.FieldError `json:"details"`
	Timestamp string                  `json:"timestamp"`
}

// SubmissionReceipt is the data object of a successful submission.
type SubmissionReceipt struct {
	UserID      string `json:"userId"`
	Type        string `json:"type"`
	ProcessedAt string `json:"processedAt"`
	DataPoints  int    `json:"dataPoints"`
}

// SubmissionResponse acknowledges an accepted submission.
type SubmissionResponse struct {
	Success      bool              `json:"success"`
	Message      string            `json:"message"`
	Data         SubmissionReceipt `json:"data"`
	ResearchNote string            `json:"research_note"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string  `json:"status"`
	Timestamp   string  `json:"timestamp"`
	Version     string  `json:"version"`
	Environment string  `json:"environment"`
	Uptime      float64 `json:"uptime"` // seconds
	Research    string  `json:"research"`
}

// ResearchBasis cites the model the collected metrics feed.
type ResearchBasis struct {
	Paper   string `json:"paper"`
	DOI     string `json:"doi"`
	Journal string `json:"journal"`
	Volume  int    `json:"volume"`
	Number  int    `json:"number"`
	Pages   string `json:"pages"`
}

// RateLimitSummary renders the live policy budgets for the docs endpoint.
type RateLimitSummary struct {
	General        string `json:"general"`
	BehavioralData string `json:"behavioral_data"`
	Health         string `json:"health"`
}

// DocsResponse is the body of GET /api/docs.
type DocsResponse struct {
	Title         string            `json:"title"`
	Version       string            `json:"version"`
	Description   string            `json:"description"`
	BaseURL       string            `json:"baseUrl"`
	Endpoints     map[string]string `json:"endpoints"`
	ResearchBasis ResearchBasis     `json:"research_basis"`
	RateLimits    RateLimitSummary  `json:"rate_limits"`
}

// writeJSON writes JSON response with proper headers.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
