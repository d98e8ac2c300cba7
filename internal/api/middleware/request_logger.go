package middleware

import (
	"net/http"
	"time"
)

// HTTPLogger пишет запись о каждом запросе
type HTTPLogger interface {
	HTTPRequest(requestID, method, path string, status int, duration time.Duration)
}

// RequestLogger логирует метод, путь, статус и длительность запроса
// Ставится после RequestID, чтобы в записи был ID запроса.
func RequestLogger(log HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			log.HTTPRequest(RequestIDFromContext(r.Context()), r.Method, r.URL.Path, wrapped.statusCode, time.Since(start))
		})
	}
}
