package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"trainpilot/backend/internal/auth"
	"trainpilot/backend/internal/model"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// UserFromContext returns the identity RequireAuth stored for this
// request, or nil if the middleware did not run.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

// ContextWithUser returns a context carrying the given identity. Handler
// tests use it to stand in for the middleware.
func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CORS sets the cross-origin headers on every response from the wrapped
// routes and answers preflight requests directly. allowedMethods is the
// endpoint's supported verb list, e.g. "POST, OPTIONS".
func CORS(allowedMethods string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", allowedMethods)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAuth verifies the bearer token on every request before any other
// work happens. All failure modes collapse to the same 401 body; whether
// the header was missing or the provider rejected the token is only
// visible in the logs.
func RequireAuth(verifier auth.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				slog.Warn("Rejecting request without authorization header", "path", r.URL.Path)
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				slog.Warn("Rejecting request with malformed authorization header", "path", r.URL.Path)
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			user, err := verifier.VerifyToken(r.Context(), parts[1])
			if err != nil {
				slog.Warn("Token verification failed", "path", r.URL.Path, "error", err)
				respondWithJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}
