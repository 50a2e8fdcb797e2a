package middleware

import (
	"net/http"
	"strings"
)

// CORS handles cross-origin requests from the configured origins.
// Preflight requests are answered directly with 200.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	allowedMethods := []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	allowedHeaders := []string{"Accept", "Authorization", "Content-Type"}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if allowed, value := originAllowed(origin, allowedOrigins); allowed {
				w.Header().Set("Access-Control-Allow-Origin", value)
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(allowedMethods, ", "))
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowedOrigins []string) (bool, string) {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			return true, "*"
		}
		if allowed == origin && origin != "" {
			return true, origin
		}
	}
	return false, ""
}
