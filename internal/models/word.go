package models

import "strings"

// WordType distinguishes the two kinds of vocabulary entries. The type of an
// entry never changes after creation.
type WordType string

const (
	WordRecognition WordType = "recognition"
	WordSpelling    WordType = "spelling"
)

// Level is the YLE word-bank level a spelling word belongs to
type Level string

const (
	LevelStarters Level = "starters"
	LevelMovers   Level = "movers"
	LevelFlyers   Level = "flyers"
)

// Word represents a vocabulary entry. Uniqueness is enforced
// case-insensitively per (word, type) pair.
type Word struct {
	ID           string   `json:"id"`
	Word         string   `json:"word"`
	Translation  string   `json:"translation"`
	Type         WordType `json:"type"`
	DateAdded    string   `json:"dateAdded"`
	Level        Level    `json:"level,omitempty"`
	NeedsReview  bool     `json:"needsReview,omitempty"`
	LastReviewed string   `json:"lastReviewed,omitempty"`
}

// Key returns the case-insensitive lookup key for a word string
func Key(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// Key returns the entry's case-insensitive lookup key
func (w *Word) Key() string {
	return Key(w.Word)
}
