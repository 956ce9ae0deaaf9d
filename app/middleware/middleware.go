package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"inkwell/app/services"
)

type contextKey int

const identityKey contextKey = iota

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Authenticate returns a middleware that requires a valid bearer token.
// The verified identity is stored in the request context; a missing,
// malformed, invalid or expired token is rejected with 403 before the
// handler runs, so rejected requests perform no store writes.
func Authenticate(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Token format: Bearer <access_token>
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 || parts[0] != "Bearer" {
				rejectToken(w)
				return
			}

			identity, err := auth.Authenticate(parts[1])
			if err != nil {
				rejectToken(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the verified identity stored by Authenticate.
func IdentityFrom(r *http.Request) (services.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(services.Identity)
	return identity, ok
}

// WithIdentity stores an identity in the request context. Intended for
// handler tests that bypass the middleware.
func WithIdentity(r *http.Request, identity services.Identity) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), identityKey, identity))
}

func rejectToken(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"error": "Invalid JSON web token."})
}
