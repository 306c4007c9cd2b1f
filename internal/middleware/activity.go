package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/prioriza/prioriza/internal/database"
	"github.com/prioriza/prioriza/internal/request"
)

// ActivityTracking records the last interaction timestamp per user. A
// tracking failure never fails the request.
func ActivityTracking(activityRepo *database.UserActivityRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := request.UserFromContext(r); user != nil {
				if err := activityRepo.UpdateLastInteraction(r.Context(), user.ID); err != nil {
					logger.Warn("failed to update user activity", zap.Error(err))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
