package middleware

import (
	"bytes"
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"

	"github.com/MikhailRaia/tavus-session-proxy/internal/pool"
)

var buffers = pool.New(64, func() *bytes.Buffer { return new(bytes.Buffer) })

// GzipMiddleware compresses JSON and text responses when the client accepts gzip.
// The response is buffered so the encoding decision can be made from the
// final Content-Type.
func GzipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			next.ServeHTTP(w, r)
			return
		}

		wrapper := &responseWriterWrapper{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           buffers.Get(),
		}
		defer buffers.Put(wrapper.body)

		next.ServeHTTP(wrapper, r)

		w.Header().Add("Vary", "Accept-Encoding")

		if wrapper.body.Len() == 0 || !compressible(w.Header().Get("Content-Type")) {
			w.WriteHeader(wrapper.statusCode)
			w.Write(wrapper.body.Bytes())
			return
		}

		gz, err := gzip.NewWriterLevel(w, gzip.BestSpeed)
		if err != nil {
			w.WriteHeader(wrapper.statusCode)
			w.Write(wrapper.body.Bytes())
			return
		}
		defer gz.Close()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.WriteHeader(wrapper.statusCode)

		gz.Write(wrapper.body.Bytes())
	})
}

// acceptsGzip reports whether an Accept-Encoding value allows gzip.
// An explicit gzip entry wins over a wildcard, and q=0 refuses the coding.
func acceptsGzip(header string) bool {
	wildcard := false

	for _, part := range strings.Split(header, ",") {
		name, params, _ := strings.Cut(part, ";")
		name = strings.ToLower(strings.TrimSpace(name))

		if name != "gzip" && name != "*" {
			continue
		}

		accepted := qValue(params) > 0
		if name == "gzip" {
			return accepted
		}
		wildcard = accepted
	}

	return wildcard
}

func qValue(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "q") {
			continue
		}

		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 0
		}
		return q
	}

	return 1
}

func compressible(contentType string) bool {
	return strings.Contains(contentType, "application/json") ||
		strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "text/plain")
}

type responseWriterWrapper struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

// WriteHeader captures the status code without immediately writing it.
func (w *responseWriterWrapper) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

// Write appends the byte slice to the body buffer.
func (w *responseWriterWrapper) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
