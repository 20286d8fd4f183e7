package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"notebook/internal/database"
	"notebook/internal/models"
	"notebook/internal/repository"
)

// Backup is the JSON document written by export and read by import
type Backup struct {
	Version     int                                  `json:"version"`
	ExportedAt  string                               `json:"exportedAt"`
	Words       []models.Word                        `json:"words"`
	Spelling    map[string]models.SpellingHistory    `json:"spellingHistory"`
	Recognition map[string]models.RecognitionHistory `json:"recognitionHistory"`
	Bank        []models.BankEntry                   `json:"bankEntries"`
	Exams       []models.ExamRecord                  `json:"examRecords"`
	Feedback    map[string]models.ParentFeedback     `json:"parentFeedback"`
}

// BackupService exports and imports the full dataset as JSON against one
// database tier
type BackupService struct {
	words       *repository.WordRepository
	spelling    *repository.SpellingHistoryRepository
	recognition *repository.RecognitionHistoryRepository
	bank        *repository.BankRepository
	exams       *repository.ExamRepository
	feedback    *repository.FeedbackRepository
}

// NewBackupService creates a backup service over the given database
func NewBackupService(db *database.DB) *BackupService {
	return &BackupService{
		words:       repository.NewWordRepository(db),
		spelling:    repository.NewSpellingHistoryRepository(db),
		recognition: repository.NewRecognitionHistoryRepository(db),
		bank:        repository.NewBankRepository(db),
		exams:       repository.NewExamRepository(db),
		feedback:    repository.NewFeedbackRepository(db),
	}
}

// Export writes the full dataset to a JSON file
func (s *BackupService) Export(path string) (*Backup, error) {
	backup := &Backup{
		Version:    1,
		ExportedAt: time.Now().Format(time.RFC3339),
	}
	var err error

	if backup.Words, err = s.words.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	if backup.Spelling, err = s.spelling.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read spelling history: %w", err)
	}
	if backup.Recognition, err = s.recognition.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read recognition history: %w", err)
	}
	if backup.Bank, err = s.bank.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read bank entries: %w", err)
	}
	if backup.Exams, err = s.exams.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read exam records: %w", err)
	}
	if backup.Feedback, err = s.feedback.GetAll(); err != nil {
		return nil, fmt.Errorf("failed to read feedback: %w", err)
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write backup file: %w", err)
	}

	return backup, nil
}

// Import reads a backup file and replaces the database contents with it
func (s *BackupService) Import(path string) (*Backup, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}
	if backup.Version != 1 {
		return nil, fmt.Errorf("unsupported backup version: %d", backup.Version)
	}

	if err := s.words.ReplaceAll(backup.Words); err != nil {
		return nil, fmt.Errorf("failed to import words: %w", err)
	}
	if err := s.spelling.SaveAll(backup.Spelling); err != nil {
		return nil, fmt.Errorf("failed to import spelling history: %w", err)
	}
	if err := s.recognition.SaveAll(backup.Recognition); err != nil {
		return nil, fmt.Errorf("failed to import recognition history: %w", err)
	}
	if err := s.bank.ReplaceAll(backup.Bank); err != nil {
		return nil, fmt.Errorf("failed to import bank entries: %w", err)
	}
	if err := s.exams.ReplaceAll(backup.Exams); err != nil {
		return nil, fmt.Errorf("failed to import exam records: %w", err)
	}
	if err := s.feedback.ReplaceAll(backup.Feedback); err != nil {
		return nil, fmt.Errorf("failed to import feedback: %w", err)
	}

	return &backup, nil
}
