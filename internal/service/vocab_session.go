package service

import (
	"math/rand"
	"sort"

	"notebook/internal/models"
	"notebook/internal/wordbank"
)

// sessionSize is the maximum number of words in a daily session
const sessionSize = 10

// TodaySession returns the session for the current date, generating one if
// none exists or a stale session from an earlier date is found
func (s *VocabService) TodaySession() *models.SpellingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureSessionLocked(s.today())
	return s.session.Clone()
}

// Regenerate discards today's session and builds a fresh one
func (s *VocabService) Regenerate() *models.SpellingSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generateLocked(s.today())
	return s.session.Clone()
}

// SubmitResult records the outcome for a word in today's session: the result
// is stored, the spelling tracker and word store are updated in the same
// critical section, and the cursor advances. Submitting the final word
// completes the session; further submits return ErrSessionComplete.
func (s *VocabService) SubmitResult(word string, correct bool) (*models.SpellingSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	s.ensureSessionLocked(today)

	sess := s.session
	if sess == nil || len(sess.Words) == 0 {
		return nil, ErrNoActiveSession
	}
	if sess.Status() == models.SessionComplete {
		return nil, ErrSessionComplete
	}

	sess.Results[word] = correct
	s.recordAttemptLocked(word, correct, today)
	s.recordSpellingAttemptLocked(word, correct)

	if sess.Index >= len(sess.Words)-1 {
		sess.Completed = true
	} else {
		sess.Index++
	}

	s.store.SaveSession(sess)
	s.store.SaveSpellingHistory(s.spelling)
	return sess.Clone(), nil
}

// ensureSessionLocked makes s.session valid for date, checking the local
// store for a same-day session before generating a new one
func (s *VocabService) ensureSessionLocked(date string) {
	if s.session.IsFor(date) {
		return
	}
	if saved := s.store.LoadSession(date); saved.IsFor(date) {
		s.session = saved
		return
	}
	s.generateLocked(date)
}

// generateLocked builds the day's practice queue: words with past errors
// first (most errors first), then words flagged for review, then a random
// fill from the word banks. Mastered words never appear, and the queue is
// deduplicated case-insensitively throughout.
func (s *VocabService) generateLocked(date string) {
	mastered := make(map[string]bool)
	for key, h := range s.spelling {
		if h.Mastered {
			mastered[key] = true
		}
	}

	words := make([]string, 0, sessionSize)
	seen := make(map[string]bool)
	add := func(word string) bool {
		if len(words) >= sessionSize {
			return false
		}
		key := models.Key(word)
		if seen[key] || mastered[key] {
			return true
		}
		seen[key] = true
		words = append(words, word)
		return true
	}

	for _, word := range s.errorWordsLocked(mastered) {
		if !add(word) {
			break
		}
	}
	for _, word := range s.reviewWordsLocked(mastered) {
		if !add(word) {
			break
		}
	}

	pool := wordbank.All()
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	for _, word := range pool {
		if !add(word) {
			break
		}
	}

	s.session = &models.SpellingSession{
		Date:    date,
		Words:   words,
		Results: make(map[string]bool),
	}
	s.store.SaveSession(s.session)
}

// errorWordsLocked lists unmastered words with past errors, most errors
// first, ties broken by the lower-cased word for a stable order
func (s *VocabService) errorWordsLocked(mastered map[string]bool) []string {
	type scored struct {
		key    string
		word   string
		errors int
	}

	var ranked []scored
	for key, h := range s.spelling {
		if !mastered[key] && h.TotalErrors > 0 {
			ranked = append(ranked, scored{key: key, word: h.Word, errors: h.TotalErrors})
		}
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].errors != ranked[j].errors {
			return ranked[i].errors > ranked[j].errors
		}
		return ranked[i].key < ranked[j].key
	})

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.word
	}
	return out
}

// reviewWordsLocked lists spelling entries flagged for review, excluding
// mastered words, in stable alphabetical order
func (s *VocabService) reviewWordsLocked(mastered map[string]bool) []string {
	var out []string
	for _, w := range s.words {
		if w.Type == models.WordSpelling && w.NeedsReview && !mastered[w.Key()] {
			out = append(out, w.Word)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return models.Key(out[i]) < models.Key(out[j])
	})
	return out
}
