package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"notekeep/export"
	"notekeep/notes"
)

type saveNoteRequest struct {
	Text   string `json:"text"`
	NoteID *int   `json:"note_id"`
}

func (h *Handler) GetNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusForbidden)
		return
	}

	listed, err := h.Notes.List(userID)
	if err != nil {
		http.Error(w, "Could not load notes", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(listed)
}

func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusForbidden)
		return
	}
	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.Notes.Get(noteID, userID)
	if errors.Is(err, notes.ErrNotFound) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not load note", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(note)
}

func (h *Handler) SaveNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusForbidden)
		return
	}
	var req saveNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	note, err := h.Notes.Save(userID, req.Text, req.NoteID)
	if errors.Is(err, notes.ErrNotFound) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not save note", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(note)
}

func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusForbidden)
		return
	}
	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid note id", http.StatusBadRequest)
		return
	}

	deleted, err := h.Notes.Delete(noteID, userID)
	if err != nil {
		http.Error(w, "Could not delete note", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{"deleted": deleted})
}

func (h *Handler) ExportNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		http.Error(w, "Not authenticated", http.StatusForbidden)
		return
	}
	noteID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid note id", http.StatusBadRequest)
		return
	}

	note, err := h.Notes.Get(noteID, userID)
	if errors.Is(err, notes.ErrNotFound) {
		http.Error(w, "Note not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Could not load note", http.StatusInternalServerError)
		return
	}

	data, err := export.Docx(note.Text)
	if err != nil {
		http.Error(w, "Could not export note", http.StatusInternalServerError)
		return
	}

	filename := export.Filename(note.ID)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
