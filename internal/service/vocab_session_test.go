package service

import (
	"errors"
	"testing"

	"notebook/internal/models"
	"notebook/internal/store"
)

func history(word string, results ...bool) models.SpellingHistory {
	h := models.NewSpellingHistory(word, "2026-02-20", results[0])
	for _, correct := range results[1:] {
		h.Record("2026-02-21", correct)
	}
	return *h
}

func TestGeneratePrioritizesErrorAndReviewWords(t *testing.T) {
	snap := &store.Snapshot{
		Spelling: map[string]models.SpellingHistory{
			"cat":   history("cat", false, false, false),  // 3 errors, unmastered
			"dog":   history("dog", false),                // 1 error, unmastered
			"apple": history("apple", false, true),        // mastered
		},
		Words: []models.Word{
			{ID: "w1", Word: "banana", Type: models.WordSpelling, NeedsReview: true},
			{ID: "w2", Word: "apple", Type: models.WordSpelling, NeedsReview: true},
		},
	}
	svc, _ := newTestService(snap, "2026-03-02")

	sess := svc.TodaySession()

	if len(sess.Words) != 10 {
		t.Fatalf("session size = %d, want 10", len(sess.Words))
	}
	if sess.Words[0] != "cat" || sess.Words[1] != "dog" {
		t.Errorf("priority prefix = %v, want [cat dog ...]", sess.Words[:3])
	}
	if sess.Words[2] != "banana" {
		t.Errorf("Words[2] = %q, want banana (review word after error words)", sess.Words[2])
	}

	seen := make(map[string]bool)
	for _, w := range sess.Words {
		key := models.Key(w)
		if key == "apple" {
			t.Error("mastered word apple must not appear")
		}
		if seen[key] {
			t.Errorf("duplicate word %q in session", w)
		}
		seen[key] = true
	}

	if sess.Status() != models.SessionInProgress {
		t.Errorf("status = %v, want in_progress", sess.Status())
	}
}

func TestGenerateIsDeterministicInPriorityPrefix(t *testing.T) {
	snap := &store.Snapshot{
		Spelling: map[string]models.SpellingHistory{
			"whale": history("whale", false),
			"snail": history("snail", false),
			"cat":   history("cat", false, false),
		},
	}
	svc, _ := newTestService(snap, "2026-03-02")

	first := svc.TodaySession()
	second := svc.Regenerate()

	// cat has the most errors; whale/snail tie and fall back to word order
	want := []string{"cat", "snail", "whale"}
	for i, w := range want {
		if first.Words[i] != w || second.Words[i] != w {
			t.Errorf("priority prefix differs at %d: %q vs %q, want %q",
				i, first.Words[i], second.Words[i], w)
		}
	}
}

func TestSubmitResultAdvancesAndCompletes(t *testing.T) {
	svc, fs := newTestService(nil, "2026-03-02")

	sess := svc.TodaySession()
	total := len(sess.Words)

	for i, word := range sess.Words {
		got, err := svc.SubmitResult(word, i%2 == 0)
		if err != nil {
			t.Fatalf("SubmitResult(%q): %v", word, err)
		}
		if i < total-1 {
			if got.Index != i+1 {
				t.Errorf("after word %d: index = %d, want %d", i, got.Index, i+1)
			}
		} else if got.Status() != models.SessionComplete {
			t.Errorf("after last word: status = %v, want complete", got.Status())
		}
	}

	if _, err := svc.SubmitResult(sess.Words[0], true); !errors.Is(err, ErrSessionComplete) {
		t.Errorf("submit on complete session: err = %v, want ErrSessionComplete", err)
	}

	// History and word store were updated together
	if len(svc.SpellingHistory()) != total {
		t.Errorf("spelling history entries = %d, want %d", len(svc.SpellingHistory()), total)
	}
	if fs.spellingSaves == 0 {
		t.Error("spelling history was never persisted")
	}
}

func TestSubmitResultUpdatesWordStore(t *testing.T) {
	snap := &store.Snapshot{
		Words: []models.Word{
			{ID: "w1", Word: "banana", Type: models.WordSpelling, NeedsReview: true},
		},
		Spelling: map[string]models.SpellingHistory{
			"banana": history("banana", false),
		},
	}
	svc, _ := newTestService(snap, "2026-03-02")
	svc.TodaySession()

	// Correct attempt clears the review flag on the existing entry
	if _, err := svc.SubmitResult("banana", true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	words := svc.Words()
	if words[0].NeedsReview {
		t.Error("NeedsReview should clear after a correct attempt")
	}
	if words[0].LastReviewed == "" {
		t.Error("LastReviewed should be set")
	}

	// Wrong attempt on an untracked word creates a review entry
	sess := svc.TodaySession()
	next, _ := sess.CurrentWord()
	if _, err := svc.SubmitResult(next, false); err != nil {
		t.Fatalf("submit: %v", err)
	}
	found := false
	for _, w := range svc.Words() {
		if w.Key() == models.Key(next) && w.Type == models.WordSpelling {
			found = true
			if !w.NeedsReview {
				t.Errorf("%q should be flagged for review", next)
			}
		}
	}
	if !found {
		t.Errorf("wrong attempt on %q should create a spelling entry", next)
	}

	// A correct attempt on an untracked word creates nothing
	before := len(svc.Words())
	sess = svc.TodaySession()
	next, _ = sess.CurrentWord()
	if _, err := svc.SubmitResult(next, true); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(svc.Words()) != before {
		t.Errorf("correct attempt on untracked word should not add an entry")
	}
}

func TestCaseVariantsShareOneHistoryEntry(t *testing.T) {
	svc, _ := newTestService(nil, "2026-03-02")
	svc.TodaySession()

	svc.recordAttemptLocked("Cat", false, "2026-03-02")
	svc.recordAttemptLocked("cat", true, "2026-03-02")

	hist := svc.SpellingHistory()
	if len(hist) != 1 {
		t.Fatalf("entries = %d, want 1", len(hist))
	}
	h := hist["cat"]
	if h.Word != "Cat" {
		t.Errorf("display word = %q, want first-seen casing Cat", h.Word)
	}
	if len(h.Attempts) != 2 || h.TotalErrors != 1 || !h.Mastered {
		t.Errorf("h = %+v, want 2 attempts, 1 error, mastered", h)
	}
}

func TestStaleSessionRegeneratedOnDateChange(t *testing.T) {
	svc, _ := newTestService(nil, "2026-03-02")

	first := svc.TodaySession()
	if first.Date != "2026-03-02" {
		t.Fatalf("date = %s", first.Date)
	}
	if _, err := svc.SubmitResult(first.Words[0], true); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// Next day: the old session is stale and a fresh one is generated
	svc.now = clockFor("2026-03-03")
	second := svc.TodaySession()
	if second.Date != "2026-03-03" {
		t.Errorf("date = %s, want 2026-03-03", second.Date)
	}
	if second.Index != 0 || len(second.Results) != 0 {
		t.Errorf("fresh session should start empty, got index=%d results=%v",
			second.Index, second.Results)
	}
}

func TestSameDaySessionRestoredFromStore(t *testing.T) {
	svc, fs := newTestService(nil, "2026-03-02")

	first := svc.TodaySession()
	if _, err := svc.SubmitResult(first.Words[0], true); err != nil {
		t.Fatalf("submit: %v", err)
	}

	// A restart on the same day picks the session up where it stopped
	snap := &store.Snapshot{}
	restarted := NewVocabService(fs, &fakeTranslator{}, snap)
	restarted.now = svc.now

	resumed := restarted.TodaySession()
	if resumed.Index != 1 {
		t.Errorf("resumed index = %d, want 1", resumed.Index)
	}
	if len(resumed.Words) != len(first.Words) {
		t.Errorf("resumed words = %d, want %d", len(resumed.Words), len(first.Words))
	}
}
