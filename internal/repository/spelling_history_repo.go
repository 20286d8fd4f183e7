package repository

import (
	"encoding/json"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// SpellingHistoryRepository handles spelling tracker database operations.
// Attempt lists are stored JSON-encoded in a text column.
type SpellingHistoryRepository struct {
	db *database.DB
}

// NewSpellingHistoryRepository creates a new spelling history repository
func NewSpellingHistoryRepository(db *database.DB) *SpellingHistoryRepository {
	return &SpellingHistoryRepository{db: db}
}

// GetAll retrieves the full tracker keyed by lower-cased word
func (r *SpellingHistoryRepository) GetAll() (map[string]models.SpellingHistory, error) {
	query := `
		SELECT word_key, word, attempts, total_errors, last_attempt_date, mastered
		FROM spelling_history
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make(map[string]models.SpellingHistory)
	for rows.Next() {
		var key, attemptsJSON string
		var h models.SpellingHistory

		err := rows.Scan(&key, &h.Word, &attemptsJSON, &h.TotalErrors, &h.LastAttemptDate, &h.Mastered)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(attemptsJSON), &h.Attempts); err != nil {
			return nil, fmt.Errorf("failed to decode attempts for %q: %w", key, err)
		}

		histories[key] = h
	}

	return histories, rows.Err()
}

// SaveAll replaces the stored tracker with the given one in one transaction
func (r *SpellingHistoryRepository) SaveAll(histories map[string]models.SpellingHistory) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM spelling_history"); err != nil {
		return fmt.Errorf("failed to clear spelling history: %w", err)
	}

	insert := `
		INSERT INTO spelling_history (word_key, word, attempts, total_errors, last_attempt_date, mastered)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for key, h := range histories {
		attemptsJSON, err := json.Marshal(h.Attempts)
		if err != nil {
			return fmt.Errorf("failed to encode attempts for %q: %w", key, err)
		}
		_, err = tx.Exec(insert, key, h.Word, string(attemptsJSON), h.TotalErrors, h.LastAttemptDate, h.Mastered)
		if err != nil {
			return fmt.Errorf("failed to insert spelling history for %q: %w", key, err)
		}
	}

	return tx.Commit()
}
