// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import "net/http"

// ContentSecurityPolicy is applied to every response. The API serves JSON
// only, so the policy is locked to same-origin.
const ContentSecurityPolicy = "default-src 'self'; " +
	"base-uri 'self'; " +
	"font-src 'self' https: data:; " +
	"form-action 'self'; " +
	"frame-ancestors 'self'; " +
	"img-src 'self' data: https:; " +
	"object-src 'none'; " +
	"script-src 'self'; " +
	"script-src-attr 'none'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"upgrade-insecure-requests"

var securityHeaders = [][2]string{
	{"Content-Security-Policy", ContentSecurityPolicy},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Origin-Agent-Cluster", "?1"},
	{"Referrer-Policy", "no-referrer"},
	{"Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload"},
	{"X-Content-Type-Options", "nosniff"},
	{"X-DNS-Prefetch-Control", "off"},
	{"X-Download-Options", "noopen"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"X-Permitted-Cross-Domain-Policies", "none"},
	{"X-XSS-Protection", "0"},
}

// SecurityHeaders sets the standard hardening headers on every response,
// including errors and rate limit rejections.
func SecurityHeaders(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range securityHeaders {
			h.Set(kv[0], kv[1])
		}
		h.Del("X-Powered-By")
		next(w, r)
	}
}
