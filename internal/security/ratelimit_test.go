package security

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLoginLimiterBlocksAfterLimit(t *testing.T) {
	l := NewLoginLimiter(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("fourth attempt should be blocked")
	}

	// Other clients keep their own budget
	if !l.Allow("10.0.0.2") {
		t.Error("different client should be allowed")
	}
}

func TestLoginLimiterResetsAfterWindow(t *testing.T) {
	l := NewLoginLimiter(1, 10*time.Millisecond)

	if !l.Allow("10.0.0.1") {
		t.Fatal("first attempt should be allowed")
	}
	if l.Allow("10.0.0.1") {
		t.Fatal("second attempt should be blocked")
	}

	time.Sleep(20 * time.Millisecond)
	if !l.Allow("10.0.0.1") {
		t.Error("attempt after the window should be allowed")
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name      string
		forwarded string
		realIP    string
		remote    string
		want      string
	}{
		{"forwarded header wins", "203.0.113.9", "198.51.100.2", "10.0.0.1:1234", "203.0.113.9"},
		{"real ip next", "", "198.51.100.2", "10.0.0.1:1234", "198.51.100.2"},
		{"remote addr fallback", "", "", "10.0.0.1:1234", "10.0.0.1:1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/api/login", nil)
			r.RemoteAddr = tt.remote
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				r.Header.Set("X-Real-IP", tt.realIP)
			}

			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
