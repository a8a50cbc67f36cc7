// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/creativepathway/internal/apierrors"
	"github.com/tomtom215/creativepathway/internal/logging"
	"github.com/tomtom215/creativepathway/internal/metrics"
)

// DefaultMaxBodyBytes caps decoded request bodies at 10 MiB.
const DefaultMaxBodyBytes int64 = 10 << 20

// MalformedBodyMessage is returned when a JSON body cannot be parsed.
const MalformedBodyMessage = "Malformed JSON body"

// maxFormDepth bounds bracket nesting in urlencoded keys.
const maxFormDepth = 8

// BodyDecoder reads JSON and urlencoded request bodies, up to maxBytes,
// into a map stored in the request context. Other content types are left
// unread. Oversized bodies fail with a PayloadTooLargeError and unparsable
// JSON with a ValidationError, both handed to onError.
func BodyDecoder(maxBytes int64, onError ErrorHandler) func(http.HandlerFunc) http.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	security := logging.NewSecurityLogger()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody || !hasBody(r.Method) {
				next(w, r)
				return
			}

			mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if mediaType != "application/json" && mediaType != "application/x-www-form-urlencoded" {
				next(w, r)
				return
			}

			if r.ContentLength > maxBytes {
				security.LogPayloadTooLarge(ClientIP(r), r.URL.Path, maxBytes)
				onError(w, r, apierrors.PayloadTooLarge(maxBytes))
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					security.LogPayloadTooLarge(ClientIP(r), r.URL.Path, maxBytes)
					onError(w, r, apierrors.PayloadTooLarge(maxBytes))
					return
				}
				onError(w, r, apierrors.Validation("Unable to read request body", nil))
				return
			}
			metrics.RecordRequestBody(len(raw))

			var body map[string]any
			if mediaType == "application/json" {
				body, err = decodeJSON(raw)
			} else {
				body, err = decodeForm(raw)
			}
			if err != nil {
				security.LogMalformedBody(ClientIP(r), r.URL.Path, mediaType)
				onError(w, r, err)
				return
			}

			ctx := r.Context()
			if body != nil {
				ctx = ContextWithBody(ctx, body)
				if id, ok := body["userId"].(string); ok {
					StateFromContext(ctx).SetUserID(id)
				}
			}
			next(w, r.WithContext(ctx))
		}
	}
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// decodeJSON parses a JSON object. An empty body decodes to nil.
func decodeJSON(raw []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, apierrors.Validation(MalformedBodyMessage, nil)
	}
	if dec.More() {
		return nil, apierrors.Validation(MalformedBodyMessage, nil)
	}

	body, ok := v.(map[string]any)
	if !ok {
		return nil, apierrors.Validation("Request body must be a JSON object", nil)
	}
	return body, nil
}

// decodeForm parses an urlencoded body, expanding bracketed keys such as
// data[attentiveness][focus_duration]=120 into nested maps.
func decodeForm(raw []byte) (map[string]any, error) {
	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return nil, apierrors.Validation("Malformed form body", nil)
	}
	if len(values) == 0 {
		return nil, nil
	}

	body := make(map[string]any, len(values))
	for key, vals := range values {
		path := splitFormKey(key)
		var value any = vals[len(vals)-1]
		if len(vals) > 1 || strings.HasSuffix(key, "[]") {
			list := make([]any, len(vals))
			for i, v := range vals {
				list[i] = v
			}
			value = list
		}
		setPath(body, path, value)
	}
	return body, nil
}

func splitFormKey(key string) []string {
	key = strings.TrimSuffix(key, "[]")
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	parts := []string{key[:open]}
	for _, seg := range strings.Split(key[open+1:len(key)-1], "][") {
		if len(parts) == maxFormDepth {
			parts[len(parts)-1] += "[" + seg + "]"
			continue
		}
		parts = append(parts, seg)
	}
	return parts
}

// setPath writes value at path, leaving earlier scalar values in place when
// a later key tries to nest under them.
func setPath(m map[string]any, path []string, value any) {
	for _, seg := range path[:len(path)-1] {
		child, ok := m[seg].(map[string]any)
		if !ok {
			if _, taken := m[seg]; taken {
				return
			}
			child = make(map[string]any)
			m[seg] = child
		}
		m = child
	}
	last := path[len(path)-1]
	if _, isMap := m[last].(map[string]any); isMap {
		return
	}
	m[last] = value
}

// ClientIP returns the request's remote address without the port. When
// RealIP runs first this is the first forwarded hop.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
