// Package request carries per-request values shared between middleware and
// handlers: the authenticated user and the client address.
package request

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/prioriza/prioriza/internal/models"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser returns a copy of the request whose context carries the
// authenticated user.
func WithUser(r *http.Request, user *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userContextKey, user))
}

// UserFromContext returns the authenticated user attached by the auth
// middleware, or nil when the request is unauthenticated.
func UserFromContext(r *http.Request) *models.User {
	user, _ := r.Context().Value(userContextKey).(*models.User)
	return user
}

// ClientIP extracts the client address for rate limiting and audit logs.
// X-Forwarded-For wins over RemoteAddr because the service runs behind a
// reverse proxy in every deployed configuration.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[0]); ip != "" {
			return ip
		}
	}
	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return strings.TrimSpace(xri)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
