package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notebook/internal/audio"
	"notebook/internal/service"
)

// WordHandler serves the word list endpoints
type WordHandler struct {
	vocab *service.VocabService
	tts   *audio.TTSService
}

// NewWordHandler creates a new word handler
func NewWordHandler(vocab *service.VocabService, tts *audio.TTSService) *WordHandler {
	return &WordHandler{vocab: vocab, tts: tts}
}

// List handles GET /api/words
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.vocab.Words())
}

// Add handles POST /api/words
func (h *WordHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Word == "" {
		respondWithError(w, http.StatusBadRequest, "word is required", nil)
		return
	}

	word, err := h.vocab.AddRecognitionWord(r.Context(), req.Word)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateWord) {
			respondWithError(w, http.StatusConflict, "word already exists", nil)
			return
		}
		respondWithError(w, http.StatusBadRequest, "could not add word", err)
		return
	}

	respondJSON(w, http.StatusCreated, word)
}

// Delete handles DELETE /api/words/{id}
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.vocab.DeleteWord(id); err != nil {
		if errors.Is(err, service.ErrWordNotFound) {
			respondWithError(w, http.StatusNotFound, "word not found", nil)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "could not delete word", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Audio handles GET /api/words/{id}/audio, generating the pronunciation
// clip on first request and counting a recognition view on every play
func (h *WordHandler) Audio(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	word, ok := h.vocab.WordByID(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "word not found", nil)
		return
	}

	path, err := h.tts.PronunciationFile(r.Context(), word.Word)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "pronunciation unavailable", err)
		return
	}

	h.vocab.RecordView(word.Word)

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}
