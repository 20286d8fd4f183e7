package handlers

import (
	"encoding/json"
	"net/http"

	"notebook/internal/service"
)

// NotebookHandler serves the bank ledger, exam log, and parent feedback
type NotebookHandler struct {
	bank     *service.BankService
	exams    *service.ExamService
	feedback *service.FeedbackService
}

// NewNotebookHandler creates a new notebook handler
func NewNotebookHandler(bank *service.BankService, exams *service.ExamService, feedback *service.FeedbackService) *NotebookHandler {
	return &NotebookHandler{bank: bank, exams: exams, feedback: feedback}
}

// BankList handles GET /api/bank
func (h *NotebookHandler) BankList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entries": h.bank.Entries(),
		"balance": h.bank.Balance(),
	})
}

// BankAdd handles POST /api/bank
func (h *NotebookHandler) BankAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
		Category    string  `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	entry, err := h.bank.Add(req.Date, req.Amount, req.Description, req.Category)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

// BankDelete handles DELETE /api/bank/{id}
func (h *NotebookHandler) BankDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.bank.Delete(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusNotFound, "bank entry not found", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// ExamList handles GET /api/exams
func (h *NotebookHandler) ExamList(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.exams.Records())
}

// ExamAdd handles POST /api/exams
func (h *NotebookHandler) ExamAdd(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string  `json:"date"`
		Subject  string  `json:"subject"`
		Score    float64 `json:"score"`
		MaxScore float64 `json:"maxScore"`
		Note     string  `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rec, err := h.exams.Add(req.Date, req.Subject, req.Score, req.MaxScore, req.Note)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

// ExamDelete handles DELETE /api/exams/{id}
func (h *NotebookHandler) ExamDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.exams.Delete(r.PathValue("id")); err != nil {
		respondWithError(w, http.StatusNotFound, "exam record not found", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// FeedbackGet handles GET /api/feedback?date=2006-01-02; without a date it
// returns every recorded scorecard
func (h *NotebookHandler) FeedbackGet(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		respondJSON(w, http.StatusOK, h.feedback.All())
		return
	}

	f, ok := h.feedback.Get(date)
	if !ok {
		respondWithError(w, http.StatusNotFound, "no feedback for date", nil)
		return
	}
	respondJSON(w, http.StatusOK, f)
}

// FeedbackSet handles POST /api/feedback
func (h *NotebookHandler) FeedbackSet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date     string `json:"date"`
		Parent   string `json:"parent"`
		Accuracy *int   `json:"accuracy"`
		Attitude *int   `json:"attitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Date == "" {
		respondWithError(w, http.StatusBadRequest, "date is required", nil)
		return
	}

	f, err := h.feedback.Set(req.Date, req.Parent, req.Accuracy, req.Attitude)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	respondJSON(w, http.StatusOK, f)
}
