package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"notekeep/summarize"
)

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	summary, err := h.Summaries.Summarize(r.Context(), req.Text)
	switch {
	case errors.Is(err, summarize.ErrEmptyText):
		http.Error(w, "No text provided", http.StatusBadRequest)
		return
	case errors.Is(err, summarize.ErrModelLoading):
		http.Error(w, "Model is still loading. Please try again in a moment.", http.StatusServiceUnavailable)
		return
	case err != nil:
		http.Error(w, "Summarization failed", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]string{"summary": summary})
}
