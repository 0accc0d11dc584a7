package models

import "time"

type Account struct {
	ID           int    `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

func (a Account) RecordID() int { return a.ID }

type Note struct {
	ID        int       `json:"id"`
	OwnerID   int       `json:"owner_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (n Note) RecordID() int { return n.ID }
