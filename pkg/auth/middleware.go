package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/wanderlist-dev/wanderlist/pkg/observability"
)

// Middleware creates HTTP middleware from a Chain. It checks the bypass
// list, runs authentication, and injects the resolved principal into the
// request context. Rejected requests never reach the downstream handler.
func Middleware(chain *Chain, bypassPrefixes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check bypass list.
			for _, prefix := range bypassPrefixes {
				if r.URL.Path == prefix || strings.HasPrefix(r.URL.Path, prefix+"/") {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Run auth chain.
			result := chain.Authenticate(r.Context(), r)

			if result.Decision != Yes || result.Principal == nil {
				slog.Warn("authentication failed",
					"path", r.URL.Path,
					"remote_addr", r.RemoteAddr,
					"error", result.Err,
				)
				observability.AuthFailuresTotal.WithLabelValues(failureReason(result)).Inc()
				http.Error(w, `{"error":{"type":"unauthenticated","message":"authentication required"}}`, http.StatusUnauthorized)
				return
			}

			// Validate principal.
			if result.Principal.ID == "" {
				slog.Error("authenticator returned principal with empty id")
				http.Error(w, `{"error":{"type":"server_error","message":"internal authentication error"}}`, http.StatusInternalServerError)
				return
			}

			slog.Debug("authentication succeeded",
				"principal", result.Principal.ID,
				"path", r.URL.Path,
			)

			ctx := SetPrincipal(r.Context(), result.Principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// failureReason distinguishes absent credentials from rejected ones for
// the auth failure metric.
func failureReason(result Result) string {
	if errors.Is(result.Err, ErrUnauthenticated) {
		return "missing_credentials"
	}
	return "invalid_credentials"
}

// DefaultBypassPrefixes lists route prefixes that skip authentication:
// health, metrics, registration/login, and the public listings.
var DefaultBypassPrefixes = []string{
	"/healthz",
	"/metrics",
	"/api/auth/register",
	"/api/auth/login",
	"/api/destinations/public",
	"/api/destinations/public-all",
	"/api/explore",
}
