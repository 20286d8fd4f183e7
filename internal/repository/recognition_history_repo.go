package repository

import (
	"encoding/json"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// RecognitionHistoryRepository handles recognition tracker database
// operations. View date lists are stored JSON-encoded in a text column.
type RecognitionHistoryRepository struct {
	db *database.DB
}

// NewRecognitionHistoryRepository creates a new recognition history repository
func NewRecognitionHistoryRepository(db *database.DB) *RecognitionHistoryRepository {
	return &RecognitionHistoryRepository{db: db}
}

// GetAll retrieves the full tracker keyed by lower-cased word
func (r *RecognitionHistoryRepository) GetAll() (map[string]models.RecognitionHistory, error) {
	query := `
		SELECT word_key, word, view_dates, total_views, first_viewed_date, last_viewed_date
		FROM recognition_history
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	histories := make(map[string]models.RecognitionHistory)
	for rows.Next() {
		var key, viewDatesJSON string
		var h models.RecognitionHistory

		err := rows.Scan(&key, &h.Word, &viewDatesJSON, &h.TotalViews, &h.FirstViewedDate, &h.LastViewedDate)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(viewDatesJSON), &h.ViewDates); err != nil {
			return nil, fmt.Errorf("failed to decode view dates for %q: %w", key, err)
		}

		histories[key] = h
	}

	return histories, rows.Err()
}

// SaveAll replaces the stored tracker with the given one in one transaction
func (r *RecognitionHistoryRepository) SaveAll(histories map[string]models.RecognitionHistory) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recognition_history"); err != nil {
		return fmt.Errorf("failed to clear recognition history: %w", err)
	}

	insert := `
		INSERT INTO recognition_history (word_key, word, view_dates, total_views, first_viewed_date, last_viewed_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for key, h := range histories {
		viewDatesJSON, err := json.Marshal(h.ViewDates)
		if err != nil {
			return fmt.Errorf("failed to encode view dates for %q: %w", key, err)
		}
		_, err = tx.Exec(insert, key, h.Word, string(viewDatesJSON), h.TotalViews, h.FirstViewedDate, h.LastViewedDate)
		if err != nil {
			return fmt.Errorf("failed to insert recognition history for %q: %w", key, err)
		}
	}

	return tx.Commit()
}
