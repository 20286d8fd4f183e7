package service

import (
	"testing"

	"notebook/internal/models"
)

type fakeNotebookStore struct {
	savedBank   []models.BankEntry
	deletedBank []string
	savedExams  []models.ExamRecord
	feedback    []models.ParentFeedback
}

func (f *fakeNotebookStore) SaveBankEntry(e models.BankEntry)    { f.savedBank = append(f.savedBank, e) }
func (f *fakeNotebookStore) DeleteBankEntry(id string)           { f.deletedBank = append(f.deletedBank, id) }
func (f *fakeNotebookStore) SaveExamRecord(rec models.ExamRecord) { f.savedExams = append(f.savedExams, rec) }
func (f *fakeNotebookStore) DeleteExamRecord(id string)          {}
func (f *fakeNotebookStore) SaveFeedback(fb models.ParentFeedback) {
	f.feedback = append(f.feedback, fb)
}

func TestBankBalance(t *testing.T) {
	fs := &fakeNotebookStore{}
	svc := NewBankService(fs, nil)

	deposits := []struct {
		amount   float64
		category string
	}{
		{100, "red-packet"},
		{20, "reward"},
		{-35.5, "other"},
	}
	for _, d := range deposits {
		if _, err := svc.Add("2026-03-02", d.amount, "test", d.category); err != nil {
			t.Fatalf("Add(%v): %v", d.amount, err)
		}
	}

	if got := svc.Balance(); got != 84.5 {
		t.Errorf("Balance = %v, want 84.5", got)
	}
	if len(fs.savedBank) != 3 {
		t.Errorf("saved entries = %d, want 3", len(fs.savedBank))
	}
}

func TestBankRejectsUnknownCategory(t *testing.T) {
	svc := NewBankService(&fakeNotebookStore{}, nil)

	if _, err := svc.Add("2026-03-02", 10, "test", "bribery"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestBankDelete(t *testing.T) {
	fs := &fakeNotebookStore{}
	svc := NewBankService(fs, nil)

	e, err := svc.Add("2026-03-02", 50, "birthday", "gift")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if err := svc.Delete(e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(svc.Entries()) != 0 {
		t.Errorf("entries = %d, want 0", len(svc.Entries()))
	}
	if svc.Balance() != 0 {
		t.Errorf("balance = %v, want 0", svc.Balance())
	}

	if err := svc.Delete("missing"); err == nil {
		t.Error("expected error deleting unknown entry")
	}
}

func TestFeedbackUpsertMergesParents(t *testing.T) {
	fs := &fakeNotebookStore{}
	svc := NewFeedbackService(fs, nil)

	four, five := 4, 5
	if _, err := svc.Set("2026-03-02", "dad", &four, &five); err != nil {
		t.Fatalf("Set dad: %v", err)
	}
	if _, err := svc.Set("2026-03-02", "mom", &five, nil); err != nil {
		t.Fatalf("Set mom: %v", err)
	}

	f, ok := svc.Get("2026-03-02")
	if !ok {
		t.Fatal("feedback missing")
	}
	if f.Dad == nil || *f.Dad.Accuracy != 4 || *f.Dad.Attitude != 5 {
		t.Errorf("dad = %+v, want accuracy 4 attitude 5", f.Dad)
	}
	if f.Mom == nil || *f.Mom.Accuracy != 5 || f.Mom.Attitude != nil {
		t.Errorf("mom = %+v, want accuracy 5, attitude unset", f.Mom)
	}

	zero := 0
	if _, err := svc.Set("2026-03-02", "dad", &zero, nil); err == nil {
		t.Error("expected error for out-of-range score")
	}
	if _, err := svc.Set("2026-03-02", "uncle", &four, nil); err == nil {
		t.Error("expected error for unknown parent")
	}
}

func TestExamValidation(t *testing.T) {
	fs := &fakeNotebookStore{}
	svc := NewExamService(fs, nil)

	if _, err := svc.Add("2026-03-02", "English", 92, 100, "spelling test"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tests := []struct {
		name     string
		subject  string
		score    float64
		maxScore float64
	}{
		{"empty subject", "", 50, 100},
		{"negative score", "Math", -1, 100},
		{"score above max", "Math", 110, 100},
		{"zero max", "Math", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Add("2026-03-02", tt.subject, tt.score, tt.maxScore, ""); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
