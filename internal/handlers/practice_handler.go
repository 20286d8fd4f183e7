package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notebook/internal/service"
)

// PracticeHandler serves the daily spelling session endpoints
type PracticeHandler struct {
	vocab *service.VocabService
}

// NewPracticeHandler creates a new practice handler
func NewPracticeHandler(vocab *service.VocabService) *PracticeHandler {
	return &PracticeHandler{vocab: vocab}
}

// Session handles GET /api/practice/session
func (h *PracticeHandler) Session(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocab.TodaySession())
}

// Regenerate handles POST /api/practice/regenerate
func (h *PracticeHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocab.Regenerate())
}

// Submit handles POST /api/practice/submit
func (h *PracticeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word    string `json:"word"`
		Correct bool   `json:"correct"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Word == "" {
		respondWithError(w, http.StatusBadRequest, "word is required", nil)
		return
	}

	session, err := h.vocab.SubmitResult(req.Word, req.Correct)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionComplete):
			respondWithError(w, http.StatusConflict, "session already complete", nil)
		case errors.Is(err, service.ErrNoActiveSession):
			respondWithError(w, http.StatusConflict, "no active session", nil)
		default:
			respondWithError(w, http.StatusInternalServerError, "could not submit result", err)
		}
		return
	}

	respondJSON(w, http.StatusOK, session)
}
