package service

import "notebook/internal/models"

// SpellingHistory returns a copy of the spelling tracker
func (s *VocabService) SpellingHistory() map[string]models.SpellingHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.SpellingHistory, len(s.spelling))
	for k, v := range s.spelling {
		out[k] = v
	}
	return out
}

// RecognitionHistory returns a copy of the recognition tracker
func (s *VocabService) RecognitionHistory() map[string]models.RecognitionHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.RecognitionHistory, len(s.recognition))
	for k, v := range s.recognition {
		out[k] = v
	}
	return out
}

// recordAttemptLocked appends a spelling attempt to the tracker, creating
// the entry on first sight of the word. Case variants of a word share one
// entry; the first-seen casing is kept for display.
func (s *VocabService) recordAttemptLocked(word string, correct bool, date string) {
	key := models.Key(word)

	if h, ok := s.spelling[key]; ok {
		h.Record(date, correct)
		s.spelling[key] = h
		return
	}
	s.spelling[key] = *models.NewSpellingHistory(word, date, correct)
}

// recordViewLocked marks a recognition view for the given calendar date
func (s *VocabService) recordViewLocked(word, date string) {
	key := models.Key(word)

	if h, ok := s.recognition[key]; ok {
		h.RecordView(date)
		s.recognition[key] = h
		return
	}
	s.recognition[key] = *models.NewRecognitionHistory(word, date)
}
