// Package middleware holds the HTTP middleware of the backend.
package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/gametracker/internal/common"
	"github.com/dmitrijs2005/gametracker/internal/logging"
	"github.com/google/uuid"
)

// RequestID propagates the caller's X-Request-ID, or assigns a new one, and
// echoes it in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(common.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(common.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logging.WithRequestID(r.Context(), id)))
	})
}

// GetRequestID returns the request id stored by RequestID, or "".
func GetRequestID(ctx context.Context) string {
	return logging.RequestID(ctx)
}
