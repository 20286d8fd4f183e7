package handlers

import (
	"net/http"

	"notebook/internal/service"
)

// HistoryHandler serves the two history trackers read-only
type HistoryHandler struct {
	vocab *service.VocabService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(vocab *service.VocabService) *HistoryHandler {
	return &HistoryHandler{vocab: vocab}
}

// Spelling handles GET /api/history/spelling
func (h *HistoryHandler) Spelling(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocab.SpellingHistory())
}

// Recognition handles GET /api/history/recognition
func (h *HistoryHandler) Recognition(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocab.RecognitionHistory())
}
