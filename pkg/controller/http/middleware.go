package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"

	"github.com/hemanth0525/contribuzz/pkg/domain/types"
)

// LoggingMiddleware returns a middleware that logs HTTP requests and
// injects the server logger into the request context.
func LoggingMiddleware(ctx context.Context) func(next http.Handler) http.Handler {
	logger := ctxlog.From(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			r = r.WithContext(ctxlog.With(r.Context(), logger))

			defer func() {
				logger.Info("HTTP request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"duration_ms", time.Since(start).Milliseconds(),
					"request_id", middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// writeJSON writes a JSON response body
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError maps an error to its status via the tag taxonomy and writes
// it under the "error" key. Internal failures are reported to Sentry.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	writeErrorKeyed(ctx, w, err, "error")
}

// writeErrorMessage is writeError with a "message" body key, for the
// endpoints whose original error contract used that field name.
func writeErrorMessage(ctx context.Context, w http.ResponseWriter, err error) {
	writeErrorKeyed(ctx, w, err, "message")
}

func writeErrorKeyed(ctx context.Context, w http.ResponseWriter, err error, key string) {
	status := types.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		ctxlog.From(ctx).Error("Request failed", "error", err, "status", status)
		sentry.CaptureException(err)
	}
	writeJSON(ctx, w, status, map[string]string{key: err.Error()})
}
