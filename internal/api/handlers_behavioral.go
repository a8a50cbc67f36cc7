// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
	"github.com/tomtom215/creativepathway/internal/middleware"
	"github.com/tomtom215/creativepathway/internal/validation"
)

// HeaderReceiptID carries the identifier assigned to an accepted submission.
const HeaderReceiptID = "X-Receipt-ID"

// BehavioralData accepts one telemetry submission.
//
// @Summary Submit behavioral data
// @Description Validates a submission against the behavioral schema and acknowledges it. Nothing is persisted.
// @Tags Telemetry
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param submission body validation.Submission true "Behavioral submission"
// @Success 200 {object} SubmissionResponse
// @Failure 400 {object} ValidationFailure "Validation failed"
// @Failure 413 {object} apierrors.Envelope "Request body too large"
// @Failure 429 {object} ratelimit.RejectionBody "Rate limit exceeded"
// @Router /api/v1/behavioral-data [post]
func (h *Handler) BehavioralData(w http.ResponseWriter, r *http.Request) {
	sub, errs := validation.ValidateSubmission(middleware.BodyFromContext(r.Context()))
	if errs != nil {
		for _, field := range errs.Fields() {
			metrics.RecordValidationFailure(field)
		}
		writeJSON(w, http.StatusBadRequest, ValidationFailure{
			Success:   false,
			Error:     "Validation failed",
			Details:   errs,
			Timestamp: h.timestamp(),
		})
		return
	}

	receiptID := uuid.New().String()
	dataPoints := sub.DataPoints()
	metrics.RecordSubmission(sub.TypeValue(), dataPoints)

	logging.Ctx(r.Context()).Info().
		Str("userId", sub.UserIDValue()).
		Str("type", sub.TypeValue()).
		Int("dataPoints", dataPoints).
		Str("timestamp", sub.TimestampValue()).
		Str("ip", middleware.ClientIP(r)).
		Str("receiptId", receiptID).
		Msg("Behavioral data received")

	w.Header().Set(HeaderReceiptID, receiptID)
	writeJSON(w, http.StatusOK, SubmissionResponse{
		Success: true,
		Message: "Behavioral data received successfully",
		Data: SubmissionReceipt{
			UserID:      sub.UserIDValue(),
			Type:        sub.TypeValue(),
			ProcessedAt: h.timestamp(),
			DataPoints:  dataPoints,
		},
		ResearchNote: "Data will be analyzed using Park et al. (2017) pathway model",
	})
}
