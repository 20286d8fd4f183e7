package models

// SessionStatus is the state of the daily practice queue
type SessionStatus string

const (
	SessionNotStarted SessionStatus = "not_started"
	SessionInProgress SessionStatus = "in_progress"
	SessionComplete   SessionStatus = "complete"
)

// SpellingSession is the day-scoped practice queue: up to ten word strings,
// a cursor, and the results collected so far. Words are plain text rather
// than Word entries because bank words may not exist in the word store yet.
// A session is only valid on the calendar date it was generated for.
type SpellingSession struct {
	Date      string          `json:"date"`
	Words     []string        `json:"words"`
	Results   map[string]bool `json:"results"`
	Index     int             `json:"index"`
	Completed bool            `json:"completed"`
}

// IsFor reports whether the session was generated for the given date
func (s *SpellingSession) IsFor(date string) bool {
	return s != nil && s.Date == date
}

// Status returns the session's place in the daily state machine
func (s *SpellingSession) Status() SessionStatus {
	switch {
	case s == nil || len(s.Words) == 0:
		return SessionNotStarted
	case s.Completed:
		return SessionComplete
	default:
		return SessionInProgress
	}
}

// Clone returns a deep copy, safe to hand out while the original mutates
func (s *SpellingSession) Clone() *SpellingSession {
	if s == nil {
		return nil
	}
	clone := &SpellingSession{
		Date:      s.Date,
		Words:     append([]string(nil), s.Words...),
		Results:   make(map[string]bool, len(s.Results)),
		Index:     s.Index,
		Completed: s.Completed,
	}
	for k, v := range s.Results {
		clone.Results[k] = v
	}
	return clone
}

// CurrentWord returns the word at the cursor, if the session is in progress
func (s *SpellingSession) CurrentWord() (string, bool) {
	if s.Status() != SessionInProgress || s.Index >= len(s.Words) {
		return "", false
	}
	return s.Words[s.Index], true
}
