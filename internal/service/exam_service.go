package service

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"notebook/internal/models"
)

// ExamStore is the persistence port for exam records
type ExamStore interface {
	SaveExamRecord(rec models.ExamRecord)
	DeleteExamRecord(id string)
}

// ExamService manages the exam score log
type ExamService struct {
	mu      sync.Mutex
	store   ExamStore
	records []models.ExamRecord
}

// NewExamService builds the service from the loaded records
func NewExamService(store ExamStore, records []models.ExamRecord) *ExamService {
	return &ExamService{store: store, records: records}
}

// Records returns a copy of the exam log
func (s *ExamService) Records() []models.ExamRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ExamRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Add records an exam result
func (s *ExamService) Add(date, subject string, score, maxScore float64, note string) (models.ExamRecord, error) {
	if subject == "" {
		return models.ExamRecord{}, fmt.Errorf("subject must not be empty")
	}
	if maxScore <= 0 || score < 0 || score > maxScore {
		return models.ExamRecord{}, fmt.Errorf("invalid score %v/%v", score, maxScore)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := models.ExamRecord{
		ID:       uuid.NewString(),
		Date:     date,
		Subject:  subject,
		Score:    score,
		MaxScore: maxScore,
		Note:     note,
	}
	s.records = append(s.records, rec)
	s.store.SaveExamRecord(rec)
	return rec, nil
}

// Delete removes an exam record by ID
func (s *ExamService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, rec := range s.records {
		if rec.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.store.DeleteExamRecord(id)
			return nil
		}
	}
	return fmt.Errorf("exam record %s not found", id)
}
