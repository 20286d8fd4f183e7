package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"notebook/internal/models"
	"notebook/internal/service"
	"notebook/internal/store"
)

type stubStore struct {
	sessions map[string]*models.SpellingSession
}

func (s *stubStore) SaveWord(models.Word)                                       {}
func (s *stubStore) DeleteWord(string)                                          {}
func (s *stubStore) SaveSpellingHistory(map[string]models.SpellingHistory)      {}
func (s *stubStore) SaveRecognitionHistory(map[string]models.RecognitionHistory) {}
func (s *stubStore) SaveSession(sess *models.SpellingSession) {
	s.sessions[sess.Date] = sess.Clone()
}
func (s *stubStore) LoadSession(date string) *models.SpellingSession {
	return s.sessions[date].Clone()
}

type stubTranslator struct{}

func (stubTranslator) Translate(_ context.Context, word string) string {
	return "[" + word + "]"
}

func newTestVocab() *service.VocabService {
	st := &stubStore{sessions: make(map[string]*models.SpellingSession)}
	return service.NewVocabService(st, stubTranslator{}, &store.Snapshot{})
}

func TestPracticeSessionEndpoint(t *testing.T) {
	h := NewPracticeHandler(newTestVocab())

	req := httptest.NewRequest("GET", "/api/practice/session", nil)
	rec := httptest.NewRecorder()
	h.Session(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var session models.SpellingSession
	if err := json.NewDecoder(rec.Body).Decode(&session); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(session.Words) != 10 {
		t.Errorf("words = %d, want 10", len(session.Words))
	}
	if session.Index != 0 || session.Completed {
		t.Errorf("fresh session should start at index 0, got %+v", session)
	}
}

func TestPracticeSubmitEndpoint(t *testing.T) {
	vocab := newTestVocab()
	h := NewPracticeHandler(vocab)

	session := vocab.TodaySession()
	body := fmt.Sprintf(`{"word":%q,"correct":true}`, session.Words[0])

	req := httptest.NewRequest("POST", "/api/practice/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var updated models.SpellingSession
	if err := json.NewDecoder(rec.Body).Decode(&updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Index != 1 {
		t.Errorf("index = %d, want 1", updated.Index)
	}
	if got := updated.Results[session.Words[0]]; !got {
		t.Errorf("result for %q not recorded", session.Words[0])
	}
}

func TestPracticeSubmitValidation(t *testing.T) {
	h := NewPracticeHandler(newTestVocab())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", "{", http.StatusBadRequest},
		{"missing word", `{"correct":true}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/practice/submit", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestPracticeSubmitAfterComplete(t *testing.T) {
	vocab := newTestVocab()
	h := NewPracticeHandler(vocab)

	session := vocab.TodaySession()
	for _, word := range session.Words {
		if _, err := vocab.SubmitResult(word, true); err != nil {
			t.Fatalf("SubmitResult(%q): %v", word, err)
		}
	}

	body := fmt.Sprintf(`{"word":%q,"correct":true}`, session.Words[0])
	req := httptest.NewRequest("POST", "/api/practice/submit", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestPracticeRegenerateEndpoint(t *testing.T) {
	vocab := newTestVocab()
	h := NewPracticeHandler(vocab)

	first := vocab.TodaySession()
	if _, err := vocab.SubmitResult(first.Words[0], true); err != nil {
		t.Fatalf("submit: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/practice/regenerate", nil)
	rec := httptest.NewRecorder()
	h.Regenerate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var fresh models.SpellingSession
	if err := json.NewDecoder(rec.Body).Decode(&fresh); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fresh.Index != 0 || len(fresh.Results) != 0 {
		t.Errorf("regenerated session should be fresh, got %+v", fresh)
	}
}
