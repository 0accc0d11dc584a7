// Package handlers exposes the note service over HTTP as a JSON API.
// Domain logic lives in the ledgers; handlers decode requests, call through,
// and translate domain errors into status codes.
package handlers

import (
	"net/http"

	"notekeep/accounts"
	"notekeep/notes"
	"notekeep/summarize"
)

type Handler struct {
	Accounts  *accounts.Ledger
	Notes     *notes.Ledger
	Summaries *summarize.Service
	JWTSecret []byte
}

func New(a *accounts.Ledger, n *notes.Ledger, s *summarize.Service, jwtSecret []byte) *Handler {
	return &Handler{Accounts: a, Notes: n, Summaries: s, JWTSecret: jwtSecret}
}

func getUserID(r *http.Request) (int, bool) {
	id, ok := r.Context().Value("userID").(int)
	return id, ok
}
