// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package logging

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Security event names.
const (
	EventRateLimitExceeded = "rate_limit_exceeded"
	EventCORSRejected      = "cors_rejected"
	EventPayloadTooLarge   = "payload_too_large"
	EventMalformedBody     = "malformed_body"
	EventPanicRecovered    = "panic_recovered"
)

// SecurityEvent represents an abuse-relevant event at the HTTP edge.
type SecurityEvent struct {
	// Event is the type of event (e.g., "rate_limit_exceeded", "cors_rejected").
	Event string
	// IPAddress is the client's IP address.
	IPAddress string
	// UserAgent is the client's user agent (truncated).
	UserAgent string
	// Method and Path identify the request.
	Method string
	Path   string
	// UserID is the submitted participant identifier, if one was decoded.
	UserID string
	// Details contains additional sanitized details.
	Details map[string]string
}

// SecurityLogger records edge events (throttling, rejected origins, oversized
// or malformed bodies) with sanitized fields.
type SecurityLogger struct {
	logger zerolog.Logger
}

// NewSecurityLogger creates a new security logger on top of the global logger.
func NewSecurityLogger() *SecurityLogger {
	return &SecurityLogger{
		logger: With().Str("component", "security").Logger(),
	}
}

// NewSecurityLoggerWithLogger creates a security logger with a custom zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSecurityLoggerWithLogger(logger zerolog.Logger) *SecurityLogger {
	return &SecurityLogger{
		logger: logger.With().Str("component", "security").Logger(),
	}
}

// LogEvent logs a security event at warn level under a fixed message so the
// events can be grepped out of combined.log.
func (l *SecurityLogger) LogEvent(event *SecurityEvent) {
	e := l.logger.Warn().Str("event", event.Event)

	if event.IPAddress != "" {
		e = e.Str("ip", event.IPAddress)
	}
	if event.Method != "" {
		e = e.Str("method", event.Method)
	}
	if event.Path != "" {
		e = e.Str("path", truncateString(event.Path, 200))
	}
	if event.UserAgent != "" {
		e = e.Str("user_agent", truncateString(event.UserAgent, 100))
	}
	if event.UserID != "" {
		e = e.Str("user_id", SanitizeUserID(event.UserID))
	}

	for k, v := range event.Details {
		e = e.Str(k, SanitizeValue(k, v))
	}

	e.Msg("Security event detected")
}

// LogRateLimitExceeded logs a request rejected by a rate limit policy.
func (l *SecurityLogger) LogRateLimitExceeded(policy, ip, path string, retryAfter int) {
	l.LogEvent(&SecurityEvent{
		Event:     EventRateLimitExceeded,
		IPAddress: ip,
		Path:      path,
		Details: map[string]string{
			"policy":      policy,
			"retry_after": strconv.Itoa(retryAfter),
		},
	})
}

// LogCORSRejected logs a cross-origin request from an origin outside the allow list.
func (l *SecurityLogger) LogCORSRejected(origin, ip, path string) {
	l.LogEvent(&SecurityEvent{
		Event:     EventCORSRejected,
		IPAddress: ip,
		Path:      path,
		Details: map[string]string{
			"origin": truncateString(origin, 200),
		},
	})
}

// LogPayloadTooLarge logs a body that exceeded the size cap.
func (l *SecurityLogger) LogPayloadTooLarge(ip, path string, limit int64) {
	l.LogEvent(&SecurityEvent{
		Event:     EventPayloadTooLarge,
		IPAddress: ip,
		Path:      path,
		Details: map[string]string{
			"limit_bytes": strconv.FormatInt(limit, 10),
		},
	})
}

// LogMalformedBody logs a body that could not be decoded.
func (l *SecurityLogger) LogMalformedBody(ip, path, contentType string) {
	l.LogEvent(&SecurityEvent{
		Event:     EventMalformedBody,
		IPAddress: ip,
		Path:      path,
		Details: map[string]string{
			"content_type": truncateString(contentType, 100),
		},
	})
}

// SanitizeUserID masks a participant identifier.
// Example: "participant-12345678" -> "part...5678"
func SanitizeUserID(userID string) string {
	if userID == "" {
		return ""
	}
	if len(userID) <= 8 {
		return "***"
	}
	return userID[:4] + "..." + userID[len(userID)-4:]
}

// SanitizeToken masks a credential-like value, showing only first and last 4 characters.
func SanitizeToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 12 {
		return "***"
	}
	return token[:4] + "..." + token[len(token)-4:]
}

var sensitiveKeys = map[string]bool{
	"token":         true,
	"password":      true,
	"secret":        true,
	"api_key":       true,
	"apikey":        true,
	"authorization": true,
	"cookie":        true,
}

// SanitizeValue sanitizes a detail value based on its key name.
func SanitizeValue(key, value string) string {
	lowerKey := strings.ToLower(key)
	if sensitiveKeys[lowerKey] {
		return SanitizeToken(value)
	}
	if lowerKey == "user_id" || lowerKey == "userid" {
		return SanitizeUserID(value)
	}
	return value
}

// truncateString truncates a string to a maximum length.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
