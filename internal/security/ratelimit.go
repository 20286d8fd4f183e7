package security

import (
	"net/http"
	"sync"
	"time"
)

// LoginLimiter caps PIN attempts per client IP within a rolling window,
// guarding the four-digit PIN against brute force
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string]*bucket
	limit    int
	window   time.Duration
}

type bucket struct {
	remaining int
	resetAt   time.Time
}

// NewLoginLimiter allows limit attempts per window for each client
func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	l := &LoginLimiter{
		attempts: make(map[string]*bucket),
		limit:    limit,
		window:   window,
	}
	go l.sweep()
	return l
}

// Allow reports whether the client may attempt another login
func (l *LoginLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.attempts[ip]
	if !ok || now.After(b.resetAt) {
		b = &bucket{remaining: l.limit, resetAt: now.Add(l.window)}
		l.attempts[ip] = b
	}

	if b.remaining == 0 {
		return false
	}
	b.remaining--
	return true
}

// sweep drops expired buckets so the map never grows unbounded
func (l *LoginLimiter) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for ip, b := range l.attempts {
			if now.After(b.resetAt) {
				delete(l.attempts, ip)
			}
		}
		l.mu.Unlock()
	}
}

// ClientIP extracts the client address, honoring common proxy headers
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
