package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/gametracker/internal/logging"
)

// Logging logs one line per request with status and duration.
func Logging(l logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rw, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.status,
				"duration", time.Since(start),
			}
			if rw.status >= http.StatusInternalServerError {
				l.Error(r.Context(), "request failed", args...)
				return
			}
			l.Info(r.Context(), "request", args...)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
