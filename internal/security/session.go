// Package security holds the HTTP-facing auth plumbing: session cookie
// construction and login rate limiting.
package security

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the parent session token
const SessionCookieName = "notebook_session"

// IsSecureRequest reports whether the request arrived over HTTPS, directly
// or via a reverse proxy
func IsSecureRequest(r *http.Request) bool {
	if r.TLS != nil {
		return true
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
		return true
	}
	return r.URL.Scheme == "https"
}

// SessionCookie builds the parent session cookie with the right flags for
// the request's scheme
func SessionCookie(r *http.Request, token string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
		SameSite: http.SameSiteLaxMode,
	}
}

// DeleteSessionCookie builds the cookie that clears the parent session
func DeleteSessionCookie(r *http.Request) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   IsSecureRequest(r),
	}
}
