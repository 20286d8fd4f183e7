package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"notebook/internal/security"
	"notebook/internal/service"
)

// AuthHandler serves parent login and logout
type AuthHandler struct {
	auth     *service.AuthService
	limiter  *security.LoginLimiter
	duration time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *service.AuthService, duration time.Duration) *AuthHandler {
	return &AuthHandler{
		auth:     auth,
		limiter:  security.NewLoginLimiter(5, 15*time.Minute),
		duration: duration,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.limiter.Allow(security.ClientIP(r)) {
		respondWithError(w, http.StatusTooManyRequests, "too many login attempts, try again later", nil)
		return
	}

	var req struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	token, err := h.auth.Login(req.PIN)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPIN) {
			respondWithError(w, http.StatusUnauthorized, "invalid PIN", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "login failed", err)
		return
	}

	http.SetCookie(w, security.SessionCookie(r, token, time.Now().Add(h.duration)))
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.DeleteSessionCookie(r))
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
