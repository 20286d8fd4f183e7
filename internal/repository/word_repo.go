// Package repository provides SQL persistence for the notebook's data. Every
// repository works against the dialect-aware database wrapper, so the same
// code serves the local SQLite store and a remote postgres or mysql mirror.
package repository

import (
	"database/sql"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// WordRepository handles word database operations
type WordRepository struct {
	db *database.DB
}

// NewWordRepository creates a new word repository
func NewWordRepository(db *database.DB) *WordRepository {
	return &WordRepository{db: db}
}

// GetAll retrieves every stored word, oldest first
func (r *WordRepository) GetAll() ([]models.Word, error) {
	query := `
		SELECT id, word, translation, word_type, date_added, level, needs_review, last_reviewed
		FROM words
		ORDER BY date_added ASC, id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var w models.Word
		var level, lastReviewed sql.NullString

		err := rows.Scan(
			&w.ID,
			&w.Word,
			&w.Translation,
			&w.Type,
			&w.DateAdded,
			&level,
			&w.NeedsReview,
			&lastReviewed,
		)
		if err != nil {
			return nil, err
		}

		if level.Valid {
			w.Level = models.Level(level.String)
		}
		if lastReviewed.Valid {
			w.LastReviewed = lastReviewed.String
		}

		words = append(words, w)
	}

	return words, rows.Err()
}

// Upsert inserts a word or updates the existing row with the same ID
func (r *WordRepository) Upsert(w *models.Word) error {
	query := `
		INSERT INTO words (id, word, translation, word_type, date_added, level, needs_review, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	return r.db.Upsert(query,
		[]string{"id"},
		[]string{"word", "translation", "word_type", "date_added", "level", "needs_review", "last_reviewed"},
		w.ID, w.Word, w.Translation, w.Type, w.DateAdded,
		nullIfEmpty(string(w.Level)), w.NeedsReview, nullIfEmpty(w.LastReviewed),
	)
}

// Delete removes a word by ID
func (r *WordRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM words WHERE id = ?", id)
	return err
}

// ReplaceAll replaces the whole word table in one transaction
func (r *WordRepository) ReplaceAll(words []models.Word) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words"); err != nil {
		return fmt.Errorf("failed to clear words: %w", err)
	}

	insert := `
		INSERT INTO words (id, word, translation, word_type, date_added, level, needs_review, last_reviewed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	for i := range words {
		w := &words[i]
		_, err := tx.Exec(insert,
			w.ID, w.Word, w.Translation, w.Type, w.DateAdded,
			nullIfEmpty(string(w.Level)), w.NeedsReview, nullIfEmpty(w.LastReviewed),
		)
		if err != nil {
			return fmt.Errorf("failed to insert word %q: %w", w.Word, err)
		}
	}

	return tx.Commit()
}

// nullIfEmpty maps empty strings to SQL NULL
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
