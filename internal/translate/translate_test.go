package translate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslateDictionaryHit(t *testing.T) {
	// Endpoint that fails if ever called
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("dictionary hit should not reach the API")
	}))
	defer server.Close()

	tr := NewWithEndpoint(server.URL, server.Client())

	tests := []struct {
		word string
		want string
	}{
		{"cat", "貓"},
		{"Cat", "貓"},
		{"  APPLE ", "蘋果"},
	}

	for _, tt := range tests {
		if got := tr.Translate(context.Background(), tt.word); got != tt.want {
			t.Errorf("Translate(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestTranslateOnlineFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "serendipity" {
			t.Errorf("q = %q, want serendipity", got)
		}
		if got := r.URL.Query().Get("langpair"); got != "en|zh-TW" {
			t.Errorf("langpair = %q, want en|zh-TW", got)
		}
		w.Write([]byte(`{"responseData":{"translatedText":"機緣"}}`))
	}))
	defer server.Close()

	tr := NewWithEndpoint(server.URL, server.Client())

	if got := tr.Translate(context.Background(), "serendipity"); got != "機緣" {
		t.Errorf("Translate = %q, want 機緣", got)
	}
}

func TestTranslateFailureReturnsBracketed(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("not json"))
			},
		},
		{
			name: "empty translation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"responseData":{"translatedText":""}}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			tr := NewWithEndpoint(server.URL, server.Client())

			if got := tr.Translate(context.Background(), "xylophone"); got != "[xylophone]" {
				t.Errorf("Translate = %q, want [xylophone]", got)
			}
		})
	}
}
