package http

import (
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
)

// handleLog records a visit event with client metadata, mirrored to
// Sentry when it is configured.
func (h *handler) handleLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	userAgent := r.UserAgent()
	timestamp := time.Now().UTC().Format(time.RFC3339)

	ctxlog.From(ctx).Info("API /api/log visited",
		"ip", ip,
		"user_agent", userAgent,
		"timestamp", timestamp,
	)
	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetExtra("ip", ip)
		scope.SetExtra("user_agent", userAgent)
		sentry.CaptureMessage("API /api/log visited")
	})

	writeJSON(ctx, w, http.StatusOK, map[string]any{
		"message": "Log saved successfully",
		"details": map[string]string{
			"ip":        ip,
			"userAgent": userAgent,
			"timestamp": timestamp,
		},
	})
}
