// SPDX-License-Identifier: MIT

package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/idx-agent/gateway/internal/log"
)

// RequestLogger emits one structured log line per request with method, path,
// status and latency, correlated via the request ID from context.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger := log.WithComponentFromContext(r.Context(), "http")
		evt := logger.Info()
		if ww.Status() >= http.StatusInternalServerError {
			evt = logger.Error()
		}
		evt.
			Str(log.FieldEvent, "request.handled").
			Str(log.FieldMethod, r.Method).
			Str(log.FieldPath, r.URL.Path).
			Int(log.FieldStatus, ww.Status()).
			Int64(log.FieldDuration, time.Since(start).Milliseconds()).
			Msg("request handled")
	})
}
