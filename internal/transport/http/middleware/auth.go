package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jeunessebiere/site-api/internal/domain"
	"github.com/jeunessebiere/site-api/internal/transport/http/response"
)

// Authenticator resolves a bearer token into its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type ctxKey int

const (
	userKey ctxKey = iota
	tokenKey
)

// UserFromContext returns the authenticated user, or nil outside the
// auth middleware.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userKey).(*domain.User)
	return u
}

// TokenFromContext returns the raw bearer token of the request.
func TokenFromContext(ctx context.Context) string {
	t, _ := ctx.Value(tokenKey).(string)
	return t
}

// RequireAuth rejects requests without a valid bearer token and stores
// the resolved user on the request context.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				response.Err(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			ctx = context.WithValue(ctx, tokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects authenticated non-administrators. It must run
// after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		if user == nil {
			response.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !user.IsAdmin() {
			response.Error(w, http.StatusForbidden, "Forbidden: Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
