// Package middleware holds the HTTP middleware chain: authentication,
// security headers, request hygiene, rate limiting, and logging.
package middleware

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/models"
	"github.com/prioriza/prioriza/internal/request"
	"github.com/prioriza/prioriza/internal/services/oidc"
)

// Auth validates the bearer token against the configured OIDC provider and
// attaches the local user to the request context, creating the user row on
// first sight of a provider subject.
func Auth(db *database.DB, oidcProvider *oidc.Provider, jwksManager *oidc.JWKSManager, providerName string, logger *zap.Logger) func(http.Handler) http.Handler {
	userRepo := database.NewUserRepository(db)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "Missing Authorization header")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, http.StatusUnauthorized, "Invalid Authorization header format")
				return
			}
			tokenString := parts[1]

			ctx := r.Context()
			oidcConfig, err := oidcProvider.GetConfig(ctx, providerName)
			if err != nil {
				respondError(w, http.StatusInternalServerError, "Failed to get OIDC configuration")
				return
			}
			if oidcConfig.JWKSUrl == nil {
				respondError(w, http.StatusInternalServerError, "JWKS URL not configured")
				return
			}

			verifier := oidc.NewVerifier(jwksManager, oidcConfig.Issuer)
			claims, err := verifier.Verify(ctx, tokenString, *oidcConfig.JWKSUrl)
			if err != nil {
				logger.Warn("token verification failed",
					zap.Error(err),
					zap.String("issuer", oidcConfig.Issuer),
				)
				respondError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := userRepo.GetByProviderID(ctx, claims.Sub)
			switch {
			case err == nil:
				// Keep the local copy of provider-owned fields current.
				updateNeeded := false
				if user.Email != claims.Email {
					user.Email = claims.Email
					updateNeeded = true
				}
				if (user.Name == nil && claims.Name != "") || (user.Name != nil && *user.Name != claims.Name) {
					name := claims.Name
					user.Name = &name
					updateNeeded = true
				}
				if updateNeeded {
					if err := userRepo.Update(ctx, user); err != nil {
						logger.Warn("failed to refresh user profile", zap.Error(err))
					}
				}
			case errors.Is(err, sql.ErrNoRows):
				user = &models.User{
					ID:            uuid.New(),
					Email:         claims.Email,
					ProviderID:    &claims.Sub,
					Name:          &claims.Name,
					EmailVerified: true,
				}
				if err := userRepo.Create(ctx, user); err != nil {
					respondError(w, http.StatusInternalServerError, "Failed to create user")
					return
				}
			default:
				logger.Error("database error while fetching user", zap.Error(err))
				respondError(w, http.StatusInternalServerError, "Database error")
				return
			}

			next.ServeHTTP(w, request.WithUser(r, user))
		})
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]any{
		"error": message,
	}
	_ = json.NewEncoder(w).Encode(response)
}
