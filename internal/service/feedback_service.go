package service

import (
	"fmt"
	"sync"

	"notebook/internal/models"
)

// FeedbackStore is the persistence port for parent feedback
type FeedbackStore interface {
	SaveFeedback(f models.ParentFeedback)
}

// FeedbackService manages the per-day parent scorecards
type FeedbackService struct {
	mu       sync.Mutex
	store    FeedbackStore
	feedback map[string]models.ParentFeedback
}

// NewFeedbackService builds the service from the loaded scorecards
func NewFeedbackService(store FeedbackStore, feedback map[string]models.ParentFeedback) *FeedbackService {
	if feedback == nil {
		feedback = make(map[string]models.ParentFeedback)
	}
	return &FeedbackService{store: store, feedback: feedback}
}

// Get returns the scorecard for a date, if one was recorded
func (s *FeedbackService) Get(date string) (models.ParentFeedback, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feedback[date]
	return f, ok
}

// All returns a copy of every recorded scorecard keyed by date
func (s *FeedbackService) All() map[string]models.ParentFeedback {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]models.ParentFeedback, len(s.feedback))
	for k, v := range s.feedback {
		out[k] = v
	}
	return out
}

// Set upserts one parent's scores for a date. Scores are 1 to 5 stars;
// nil leaves a score unset.
func (s *FeedbackService) Set(date, parent string, accuracy, attitude *int) (models.ParentFeedback, error) {
	for _, score := range []*int{accuracy, attitude} {
		if score != nil && (*score < 1 || *score > 5) {
			return models.ParentFeedback{}, fmt.Errorf("score %d out of range 1-5", *score)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.feedback[date]
	if !ok {
		f = models.ParentFeedback{Date: date}
	}

	score := &models.ParentScore{Accuracy: accuracy, Attitude: attitude}
	switch parent {
	case "dad":
		f.Dad = score
	case "mom":
		f.Mom = score
	default:
		return models.ParentFeedback{}, fmt.Errorf("unknown parent: %s", parent)
	}

	s.feedback[date] = f
	s.store.SaveFeedback(f)
	return f, nil
}
