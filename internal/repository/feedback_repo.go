package repository

import (
	"database/sql"
	"fmt"

	"notebook/internal/database"
	"notebook/internal/models"
)

// FeedbackRepository handles daily parent feedback database operations.
// One row per calendar day; unset scores are NULL.
type FeedbackRepository struct {
	db *database.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *database.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// GetAll retrieves every feedback row keyed by date
func (r *FeedbackRepository) GetAll() (map[string]models.ParentFeedback, error) {
	query := `
		SELECT feedback_date, dad_accuracy, dad_attitude, mom_accuracy, mom_attitude
		FROM parent_feedback
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedback := make(map[string]models.ParentFeedback)
	for rows.Next() {
		var f models.ParentFeedback
		var dadAcc, dadAtt, momAcc, momAtt sql.NullInt64

		if err := rows.Scan(&f.Date, &dadAcc, &dadAtt, &momAcc, &momAtt); err != nil {
			return nil, err
		}

		f.Dad = scoreFromNullable(dadAcc, dadAtt)
		f.Mom = scoreFromNullable(momAcc, momAtt)

		feedback[f.Date] = f
	}

	return feedback, rows.Err()
}

// Upsert inserts or updates the feedback row for its date
func (r *FeedbackRepository) Upsert(f *models.ParentFeedback) error {
	dadAcc, dadAtt := nullableScore(f.Dad)
	momAcc, momAtt := nullableScore(f.Mom)

	query := `
		INSERT INTO parent_feedback (feedback_date, dad_accuracy, dad_attitude, mom_accuracy, mom_attitude)
		VALUES (?, ?, ?, ?, ?)
	`

	return r.db.Upsert(query,
		[]string{"feedback_date"},
		[]string{"dad_accuracy", "dad_attitude", "mom_accuracy", "mom_attitude"},
		f.Date, dadAcc, dadAtt, momAcc, momAtt,
	)
}

// ReplaceAll replaces every feedback row in one transaction
func (r *FeedbackRepository) ReplaceAll(feedback map[string]models.ParentFeedback) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM parent_feedback"); err != nil {
		return fmt.Errorf("failed to clear parent feedback: %w", err)
	}

	insert := `
		INSERT INTO parent_feedback (feedback_date, dad_accuracy, dad_attitude, mom_accuracy, mom_attitude)
		VALUES (?, ?, ?, ?, ?)
	`
	for date, f := range feedback {
		dadAcc, dadAtt := nullableScore(f.Dad)
		momAcc, momAtt := nullableScore(f.Mom)
		if _, err := tx.Exec(insert, date, dadAcc, dadAtt, momAcc, momAtt); err != nil {
			return fmt.Errorf("failed to insert feedback for %s: %w", date, err)
		}
	}

	return tx.Commit()
}

func scoreFromNullable(accuracy, attitude sql.NullInt64) *models.ParentScore {
	if !accuracy.Valid && !attitude.Valid {
		return nil
	}
	score := &models.ParentScore{}
	if accuracy.Valid {
		v := int(accuracy.Int64)
		score.Accuracy = &v
	}
	if attitude.Valid {
		v := int(attitude.Int64)
		score.Attitude = &v
	}
	return score
}

func nullableScore(score *models.ParentScore) (interface{}, interface{}) {
	if score == nil {
		return nil, nil
	}
	var accuracy, attitude interface{}
	if score.Accuracy != nil {
		accuracy = *score.Accuracy
	}
	if score.Attitude != nil {
		attitude = *score.Attitude
	}
	return accuracy, attitude
}
