package auth

import (
	"context"
	"net/http"

	"github.com/ndelacroix/chatline-be/internal/services"
	"github.com/rs/zerolog/log"
)

// CallerIDHeader carries the opaque user id on authenticated requests.
const CallerIDHeader = "user-id"

type contextKey string

// CallerIDKey is the context key for the caller's user id.
const CallerIDKey = contextKey("callerID")

// CallerID extracts the caller id stashed by the Identity middleware.
// Empty means the request carried no identity.
func CallerID(r *http.Request) string {
	id, _ := r.Context().Value(CallerIDKey).(string)
	return id
}

// Identity returns a middleware that reads the caller id header, touches
// the user's presence, and stores the id in the request context. The id is
// not validated here; services resolve it and fail with Unauthorized when
// it matches no user.
func Identity(userSvc services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(CallerIDHeader)
			if id != "" {
				// Best-effort: an unknown id is silently ignored.
				if err := userSvc.TouchPresence(id); err != nil {
					log.Error().Err(err).Str("user_id", id).Msg("Failed to touch presence")
				}
				r = r.WithContext(context.WithValue(r.Context(), CallerIDKey, id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
