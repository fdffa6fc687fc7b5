package auth

import (
	"context"
	"net/http"
	"strconv"

	"freight/internal/entities"
	"freight/pkg/logger"
)

// The identity provider upstream terminates the session and installs these
// headers. This service trusts them and only checks capabilities.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserType = "X-User-Type"
)

type contextKey struct{}

// FromContext returns the authenticated principal installed by Require.
func FromContext(ctx context.Context) (entities.Principal, bool) {
	principal, ok := ctx.Value(contextKey{}).(entities.Principal)
	return principal, ok
}

// Require rejects requests whose identity headers are missing or whose user
// type does not carry the needed capability, then passes the principal down
// through the request context.
func Require(log handlerLogger, userType entities.UserType, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(HeaderUserID), 10, 64)
		if err != nil || userID <= 0 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		rawUserType := r.Header.Get(HeaderUserType)
		if !entities.IsValidUserType(rawUserType) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		principal := entities.Principal{
			UserID:   userID,
			UserType: entities.UserType(rawUserType),
		}

		if principal.UserType != userType {
			log.With(
				logger.NewField("user_id", principal.UserID),
				logger.NewField("user_type", principal.UserType.String()),
				logger.NewField("path", r.URL.Path),
			).Warn("capability denied")
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, principal)))
	})
}
