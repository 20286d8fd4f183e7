package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// SessionRepository handles daily spelling session database operations.
// Sessions live only in the local store; one row per calendar day.
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Get retrieves the session for a date, or nil if none was saved
func (r *SessionRepository) Get(date string) (*models.SpellingSession, error) {
	query := `
		SELECT session_date, words, results, current_index, completed
		FROM practice_sessions
		WHERE session_date = ?
	`

	var s models.SpellingSession
	var wordsJSON, resultsJSON string

	err := r.db.QueryRow(query, date).Scan(&s.Date, &wordsJSON, &resultsJSON, &s.Index, &s.Completed)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(wordsJSON), &s.Words); err != nil {
		return nil, fmt.Errorf("failed to decode session words: %w", err)
	}
	if err := json.Unmarshal([]byte(resultsJSON), &s.Results); err != nil {
		return nil, fmt.Errorf("failed to decode session results: %w", err)
	}
	if s.Results == nil {
		s.Results = make(map[string]bool)
	}

	return &s, nil
}

// Save upserts the session row for its date
func (r *SessionRepository) Save(s *models.SpellingSession) error {
	wordsJSON, err := json.Marshal(s.Words)
	if err != nil {
		return fmt.Errorf("failed to encode session words: %w", err)
	}
	resultsJSON, err := json.Marshal(s.Results)
	if err != nil {
		return fmt.Errorf("failed to encode session results: %w", err)
	}

	query := `
		INSERT INTO practice_sessions (session_date, words, results, current_index, completed)
		VALUES (?, ?, ?, ?, ?)
	`

	return r.db.Upsert(query,
		[]string{"session_date"},
		[]string{"words", "results", "current_index", "completed"},
		s.Date, string(wordsJSON), string(resultsJSON), s.Index, s.Completed,
	)
}

// DeleteBefore removes sessions older than the given date
func (r *SessionRepository) DeleteBefore(date string) error {
	_, err := r.db.Exec("DELETE FROM practice_sessions WHERE session_date < ?", date)
	return err
}
