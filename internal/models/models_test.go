package models

import "testing"

func TestSpellingHistoryRecord(t *testing.T) {
	tests := []struct {
		name         string
		attempts     []bool
		wantErrors   int
		wantMastered bool
	}{
		{
			name:         "single correct attempt",
			attempts:     []bool{true},
			wantErrors:   0,
			wantMastered: true,
		},
		{
			name:         "single wrong attempt",
			attempts:     []bool{false},
			wantErrors:   1,
			wantMastered: false,
		},
		{
			name:         "wrong then correct",
			attempts:     []bool{false, true},
			wantErrors:   1,
			wantMastered: true,
		},
		{
			name:         "mastery is not sticky",
			attempts:     []bool{true, true, false},
			wantErrors:   1,
			wantMastered: false,
		},
		{
			name:         "errors accumulate over full sequence",
			attempts:     []bool{false, false, true, false, true},
			wantErrors:   3,
			wantMastered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSpellingHistory("cat", "2026-01-01", tt.attempts[0])
			for _, correct := range tt.attempts[1:] {
				h.Record("2026-01-02", correct)
			}

			if len(h.Attempts) != len(tt.attempts) {
				t.Errorf("Attempts length = %d, want %d", len(h.Attempts), len(tt.attempts))
			}
			if h.TotalErrors != tt.wantErrors {
				t.Errorf("TotalErrors = %d, want %d", h.TotalErrors, tt.wantErrors)
			}
			if h.Mastered != tt.wantMastered {
				t.Errorf("Mastered = %v, want %v", h.Mastered, tt.wantMastered)
			}
			if h.LastAttemptDate == "" {
				t.Error("LastAttemptDate should be set")
			}
		})
	}
}

func TestRecognitionHistoryRecordView(t *testing.T) {
	h := NewRecognitionHistory("dog", "2026-01-01")

	// Same-day views are idempotent
	h.RecordView("2026-01-01")
	h.RecordView("2026-01-01")
	if h.TotalViews != 1 {
		t.Errorf("TotalViews after repeat same-day views = %d, want 1", h.TotalViews)
	}

	h.RecordView("2026-01-02")
	h.RecordView("2026-01-03")
	if h.TotalViews != 3 {
		t.Errorf("TotalViews = %d, want 3", h.TotalViews)
	}
	if h.TotalViews != len(h.ViewDates) {
		t.Errorf("TotalViews = %d, but len(ViewDates) = %d", h.TotalViews, len(h.ViewDates))
	}
	if h.FirstViewedDate != "2026-01-01" {
		t.Errorf("FirstViewedDate = %q, want 2026-01-01", h.FirstViewedDate)
	}
	if h.LastViewedDate != "2026-01-03" {
		t.Errorf("LastViewedDate = %q, want 2026-01-03", h.LastViewedDate)
	}
}

func TestSessionStatus(t *testing.T) {
	tests := []struct {
		name    string
		session *SpellingSession
		want    SessionStatus
	}{
		{
			name:    "nil session",
			session: nil,
			want:    SessionNotStarted,
		},
		{
			name:    "empty word list",
			session: &SpellingSession{Date: "2026-01-01"},
			want:    SessionNotStarted,
		},
		{
			name: "in progress",
			session: &SpellingSession{
				Date:    "2026-01-01",
				Words:   []string{"cat", "dog"},
				Results: map[string]bool{},
			},
			want: SessionInProgress,
		},
		{
			name: "completed",
			session: &SpellingSession{
				Date:      "2026-01-01",
				Words:     []string{"cat", "dog"},
				Index:     1,
				Completed: true,
			},
			want: SessionComplete,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Status(); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWordKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cat", "cat"},
		{"  Dog  ", "dog"},
		{"APPLE", "apple"},
	}

	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
