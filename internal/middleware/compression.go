// CreativePathway - Behavioral Telemetry Ingestion API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/creativepathway

package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	// DefaultCompressionLevel balances CPU against ratio for JSON payloads.
	DefaultCompressionLevel = 6

	// DefaultCompressionThreshold is the smallest body worth compressing.
	DefaultCompressionThreshold = 1024

	// HeaderNoCompression lets a client opt out of response compression.
	HeaderNoCompression = "X-No-Compression"
)

// gzipResponseWriter holds the body back until it either crosses the
// threshold, at which point it switches to gzip, or the handler returns.
type gzipResponseWriter struct {
	http.ResponseWriter
	pool      *sync.Pool
	threshold int

	buf         bytes.Buffer
	gz          *gzip.Writer
	status      int
	wroteHeader bool
	passthrough bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	if w.gz != nil {
		return w.gz.Write(b)
	}
	if w.passthrough {
		return w.ResponseWriter.Write(b)
	}

	w.buf.Write(b)
	if w.buf.Len() < w.threshold {
		return len(b), nil
	}
	if err := w.start(); err != nil {
		return 0, err
	}
	return len(b), nil
}

// start commits the response headers once the body is known to be large
// enough, then flushes the buffered bytes through the chosen writer.
func (w *gzipResponseWriter) start() error {
	h := w.Header()
	if h.Get("Content-Encoding") != "" || !bodyAllowed(w.status) {
		w.passthrough = true
		w.writeHeader()
		_, err := w.ResponseWriter.Write(w.buf.Bytes())
		w.buf.Reset()
		return err
	}

	h.Set("Content-Encoding", "gzip")
	h.Del("Content-Length")
	w.writeHeader()

	w.gz = w.pool.Get().(*gzip.Writer)
	w.gz.Reset(w.ResponseWriter)
	_, err := w.gz.Write(w.buf.Bytes())
	w.buf.Reset()
	return err
}

func (w *gzipResponseWriter) writeHeader() {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.ResponseWriter.WriteHeader(w.status)
}

// finish sends whatever the handler left behind.
func (w *gzipResponseWriter) finish() {
	if w.gz != nil {
		_ = w.gz.Close() // response already committed
		w.gz.Reset(io.Discard)
		w.pool.Put(w.gz)
		w.gz = nil
		return
	}
	if w.passthrough {
		return
	}
	if w.status == 0 && w.buf.Len() == 0 {
		// handler wrote nothing; let net/http send its implicit 200
		return
	}
	w.writeHeader()
	if w.buf.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.buf.Bytes())
	}
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *gzipResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func bodyAllowed(status int) bool {
	return status >= 200 && status != http.StatusNoContent && status != http.StatusNotModified
}

// Compression returns middleware that gzips response bodies of at least
// threshold bytes when the client accepts gzip. Requests carrying the
// X-No-Compression header are served uncompressed.
func Compression(level, threshold int) func(http.HandlerFunc) http.HandlerFunc {
	if level < gzip.HuffmanOnly || level > gzip.BestCompression {
		level = DefaultCompressionLevel
	}
	if threshold < 0 {
		threshold = DefaultCompressionThreshold
	}
	pool := &sync.Pool{
		New: func() any {
			gz, _ := gzip.NewWriterLevel(io.Discard, level) // level validated above
			return gz
		},
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Vary", "Accept-Encoding")

			if r.Header.Get(HeaderNoCompression) != "" ||
				!strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") ||
				r.Method == http.MethodHead {
				next(w, r)
				return
			}

			gzw := &gzipResponseWriter{ResponseWriter: w, pool: pool, threshold: threshold}
			defer gzw.finish()
			next(gzw, r)
		}
	}
}
