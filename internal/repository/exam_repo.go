package repository

import (
	"database/sql"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// ExamRepository handles exam record database operations
type ExamRepository struct {
	db *database.DB
}

// NewExamRepository creates a new exam repository
func NewExamRepository(db *database.DB) *ExamRepository {
	return &ExamRepository{db: db}
}

// GetAll retrieves every exam record, newest first
func (r *ExamRepository) GetAll() ([]models.ExamRecord, error) {
	query := `
		SELECT id, exam_date, subject, score, max_score, note
		FROM exam_records
		ORDER BY exam_date DESC, id DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.ExamRecord
	for rows.Next() {
		var rec models.ExamRecord
		var note sql.NullString

		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Subject, &rec.Score, &rec.MaxScore, &note); err != nil {
			return nil, err
		}
		if note.Valid {
			rec.Note = note.String
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

// Upsert inserts a record or updates the existing row with the same ID
func (r *ExamRepository) Upsert(rec *models.ExamRecord) error {
	query := `
		INSERT INTO exam_records (id, exam_date, subject, score, max_score, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	return r.db.Upsert(query,
		[]string{"id"},
		[]string{"exam_date", "subject", "score", "max_score", "note"},
		rec.ID, rec.Date, rec.Subject, rec.Score, rec.MaxScore, nullIfEmpty(rec.Note),
	)
}

// Delete removes a record by ID
func (r *ExamRepository) Delete(id string) error {
	_, err := r.db.Exec("DELETE FROM exam_records WHERE id = ?", id)
	return err
}

// ReplaceAll replaces every exam record in one transaction
func (r *ExamRepository) ReplaceAll(records []models.ExamRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM exam_records"); err != nil {
		return fmt.Errorf("failed to clear exam records: %w", err)
	}

	insert := `
		INSERT INTO exam_records (id, exam_date, subject, score, max_score, note)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i := range records {
		rec := &records[i]
		_, err := tx.Exec(insert, rec.ID, rec.Date, rec.Subject, rec.Score, rec.MaxScore, nullIfEmpty(rec.Note))
		if err != nil {
			return fmt.Errorf("failed to insert exam record %s: %w", rec.ID, err)
		}
	}

	return tx.Commit()
}
