package handlers

import (
	"log"
	"net/http"
	"time"

	"notebook/internal/security"
	"notebook/internal/service"
)

// Middleware holds dependencies for middleware functions
type Middleware struct {
	auth *service.AuthService
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(auth *service.AuthService) *Middleware {
	return &Middleware{auth: auth}
}

// RequireParent guards an endpoint behind a valid parent session cookie
func (m *Middleware) RequireParent(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "parent login required", nil)
			return
		}

		if err := m.auth.Validate(cookie.Value); err != nil {
			http.SetCookie(w, security.DeleteSessionCookie(r))
			respondWithError(w, http.StatusUnauthorized, "session expired", err)
			return
		}

		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}
