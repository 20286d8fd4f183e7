package models

// Attempt is one spelling practice result for a word
type Attempt struct {
	Date    string `json:"date"`
	Correct bool   `json:"correct"`
}

// SpellingHistory is the longitudinal log of every spelling attempt for one
// word, keyed by the lower-cased word. It outlives the Word entry: deleting
// a word never deletes its history.
type SpellingHistory struct {
	Word            string    `json:"word"`
	Attempts        []Attempt `json:"attempts"`
	TotalErrors     int       `json:"totalErrors"`
	LastAttemptDate string    `json:"lastAttemptDate"`
	Mastered        bool      `json:"mastered"`
}

// NewSpellingHistory creates the history entry for a word's first attempt
func NewSpellingHistory(word, date string, correct bool) *SpellingHistory {
	h := &SpellingHistory{Word: word}
	h.Record(date, correct)
	return h
}

// Record appends an attempt and re-establishes the entry's invariants.
// TotalErrors is recomputed over the full sequence rather than incremented,
// and mastery always reflects the latest attempt: a later wrong attempt
// un-masters the word.
func (h *SpellingHistory) Record(date string, correct bool) {
	h.Attempts = append(h.Attempts, Attempt{Date: date, Correct: correct})
	h.TotalErrors = countErrors(h.Attempts)
	h.LastAttemptDate = date
	h.Mastered = correct
}

func countErrors(attempts []Attempt) int {
	errors := 0
	for _, a := range attempts {
		if !a.Correct {
			errors++
		}
	}
	return errors
}

// RecognitionHistory records the calendar days a recognition word was seen
// (added or pronounced), keyed by the lower-cased word.
type RecognitionHistory struct {
	Word            string   `json:"word"`
	ViewDates       []string `json:"viewDates"`
	TotalViews      int      `json:"totalViews"`
	FirstViewedDate string   `json:"firstViewedDate"`
	LastViewedDate  string   `json:"lastViewedDate"`
}

// NewRecognitionHistory creates the history entry for a word's first view
func NewRecognitionHistory(word, date string) *RecognitionHistory {
	return &RecognitionHistory{
		Word:            word,
		ViewDates:       []string{date},
		TotalViews:      1,
		FirstViewedDate: date,
		LastViewedDate:  date,
	}
}

// RecordView adds a view for the given calendar date. Repeat views on the
// same day are idempotent; FirstViewedDate is set at creation and never
// changes afterwards.
func (h *RecognitionHistory) RecordView(date string) {
	for _, d := range h.ViewDates {
		if d == date {
			h.LastViewedDate = date
			return
		}
	}
	h.ViewDates = append(h.ViewDates, date)
	h.TotalViews = len(h.ViewDates)
	h.LastViewedDate = date
}
