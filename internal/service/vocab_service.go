package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"notebook/internal/models"
	"notebook/internal/store"
	"notebook/internal/wordbank"
)

// VocabStore is the persistence port the vocabulary service writes through.
// All methods are fire-and-forget: the in-memory state is authoritative and
// storage failures must not surface to practice flows.
type VocabStore interface {
	SaveWord(w models.Word)
	DeleteWord(id string)
	SaveSpellingHistory(histories map[string]models.SpellingHistory)
	SaveRecognitionHistory(histories map[string]models.RecognitionHistory)
	SaveSession(session *models.SpellingSession)
	LoadSession(date string) *models.SpellingSession
}

// Translator resolves a word to its translation; it never fails
type Translator interface {
	Translate(ctx context.Context, word string) string
}

// VocabService owns the vocabulary trainer state: the word store, both
// history trackers, and the daily spelling session. One mutex guards all of
// it, so every mutation is atomic from any reader's perspective.
type VocabService struct {
	mu    sync.Mutex
	store VocabStore
	trans Translator
	now   func() time.Time

	words       []models.Word
	spelling    map[string]models.SpellingHistory
	recognition map[string]models.RecognitionHistory
	session     *models.SpellingSession
}

// NewVocabService builds the service from a startup snapshot
func NewVocabService(st VocabStore, trans Translator, snap *store.Snapshot) *VocabService {
	s := &VocabService{
		store:       st,
		trans:       trans,
		now:         time.Now,
		words:       snap.Words,
		spelling:    snap.Spelling,
		recognition: snap.Recognition,
	}
	if s.spelling == nil {
		s.spelling = make(map[string]models.SpellingHistory)
	}
	if s.recognition == nil {
		s.recognition = make(map[string]models.RecognitionHistory)
	}
	return s
}

// today returns the current calendar date
func (s *VocabService) today() string {
	return s.now().Format("2006-01-02")
}

// Words returns a copy of the word list
func (s *VocabService) Words() []models.Word {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Word, len(s.words))
	copy(out, s.words)
	return out
}

// WordByID looks up a word by its ID
func (s *VocabService) WordByID(id string) (models.Word, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.words {
		if w.ID == id {
			return w, true
		}
	}
	return models.Word{}, false
}

// AddRecognitionWord adds a word to the recognition list, translating it and
// recording today's view. Duplicate words (case-insensitive, same type)
// are rejected with ErrDuplicateWord.
func (s *VocabService) AddRecognitionWord(ctx context.Context, text string) (models.Word, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.Word{}, fmt.Errorf("word must not be empty")
	}
	key := models.Key(trimmed)

	s.mu.Lock()
	if s.hasWordLocked(key, models.WordRecognition) {
		s.mu.Unlock()
		return models.Word{}, ErrDuplicateWord
	}
	s.mu.Unlock()

	// Translation does network I/O, keep it outside the lock
	translation := s.trans.Translate(ctx, trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasWordLocked(key, models.WordRecognition) {
		return models.Word{}, ErrDuplicateWord
	}

	w := models.Word{
		ID:          uuid.NewString(),
		Word:        trimmed,
		Translation: translation,
		Type:        models.WordRecognition,
		DateAdded:   s.now().Format(time.RFC3339),
	}
	s.words = append(s.words, w)
	s.recordViewLocked(trimmed, s.today())

	s.store.SaveWord(w)
	s.store.SaveRecognitionHistory(s.recognition)
	return w, nil
}

// DeleteWord removes a word from the store. History entries for the word
// are kept; past attempts and views remain queryable.
func (s *VocabService) DeleteWord(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, w := range s.words {
		if w.ID == id {
			s.words = append(s.words[:i], s.words[i+1:]...)
			s.store.DeleteWord(id)
			return nil
		}
	}
	return ErrWordNotFound
}

// RecordView notes that a recognition word was viewed today. Called when
// the word's pronunciation is played.
func (s *VocabService) RecordView(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasWordLocked(models.Key(word), models.WordRecognition) {
		return
	}
	s.recordViewLocked(word, s.today())
	s.store.SaveRecognitionHistory(s.recognition)
}

func (s *VocabService) hasWordLocked(key string, wordType models.WordType) bool {
	for _, w := range s.words {
		if w.Type == wordType && w.Key() == key {
			return true
		}
	}
	return false
}

// recordSpellingAttemptLocked updates the word store after a spelling
// attempt. Existing spelling entries get their review flag refreshed; a
// wrong attempt on an untracked word creates a review entry. A correct
// attempt on an untracked word changes nothing here.
func (s *VocabService) recordSpellingAttemptLocked(word string, correct bool) {
	key := models.Key(word)
	nowStr := s.now().Format(time.RFC3339)

	for i := range s.words {
		w := &s.words[i]
		if w.Type == models.WordSpelling && w.Key() == key {
			w.NeedsReview = !correct
			w.LastReviewed = nowStr
			s.store.SaveWord(*w)
			return
		}
	}

	if correct {
		return
	}

	w := models.Word{
		ID:           uuid.NewString(),
		Word:         strings.TrimSpace(word),
		Type:         models.WordSpelling,
		DateAdded:    nowStr,
		NeedsReview:  true,
		LastReviewed: nowStr,
	}
	if level, ok := wordbank.LevelOf(word); ok {
		w.Level = level
	}
	s.words = append(s.words, w)
	s.store.SaveWord(w)
}
