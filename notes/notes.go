// Package notes holds the per-owner note ledger over the persisted note
// collection. Every lookup is keyed by note id AND owner id: a note held by
// another owner answers exactly like a note that does not exist.
package notes

import (
	"errors"
	"sort"
	"time"

	"notekeep/models"
	"notekeep/store"
)

var ErrNotFound = errors.New("note not found")

type Ledger struct {
	store *store.Store[models.Note]
	now   func() time.Time
}

func NewLedger(s *store.Store[models.Note]) *Ledger {
	return &Ledger{store: s, now: time.Now}
}

// List returns the owner's notes, most recently created first. The sort is
// stable so notes sharing a timestamp keep their insertion order.
func (l *Ledger) List(ownerID int) ([]models.Note, error) {
	owned := []models.Note{}
	err := l.store.View(func(records []models.Note) error {
		for _, n := range records {
			if n.OwnerID == ownerID {
				owned = append(owned, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (l *Ledger) Get(id, ownerID int) (*models.Note, error) {
	var found *models.Note
	err := l.store.View(func(records []models.Note) error {
		for i := range records {
			if records[i].ID == id && records[i].OwnerID == ownerID {
				n := records[i]
				found = &n
				return nil
			}
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Save creates a note when id is nil, otherwise replaces the text of the
// owner's existing note. Editing a note that is absent, or held by someone
// else, fails with ErrNotFound.
func (l *Ledger) Save(ownerID int, text string, id *int) (*models.Note, error) {
	now := l.now()
	var result models.Note
	err := l.store.Update(func(records []models.Note) ([]models.Note, error) {
		if id == nil {
			result = models.Note{
				ID:        store.NextID(records),
				OwnerID:   ownerID,
				Text:      text,
				CreatedAt: now,
				UpdatedAt: now,
			}
			return append(records, result), nil
		}
		for i := range records {
			if records[i].ID == *id && records[i].OwnerID == ownerID {
				records[i].Text = text
				records[i].UpdatedAt = now
				result = records[i]
				return records, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the owner's note and reports how many records went away.
// Deleting a note that is already gone is a no-op, not an error.
func (l *Ledger) Delete(id, ownerID int) (int, error) {
	deleted := 0
	err := l.store.Update(func(records []models.Note) ([]models.Note, error) {
		kept := records[:0]
		for _, n := range records {
			if n.ID == id && n.OwnerID == ownerID {
				deleted++
				continue
			}
			kept = append(kept, n)
		}
		return kept, nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
