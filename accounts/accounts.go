// Package accounts holds the account ledger: signup and credential checks
// over the persisted account collection.
package accounts

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"notekeep/models"
	"notekeep/store"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// dummyHash is compared against when the email is unknown, so failed logins
// cost the same whether the account exists or not.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("notekeep-no-such-account"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

type Ledger struct {
	store *store.Store[models.Account]
}

func NewLedger(s *store.Store[models.Account]) *Ledger {
	return &Ledger{store: s}
}

// Create registers a new account. The email must not already be in use; the
// uniqueness check and the append happen inside one store update, so two
// concurrent signups with the same email cannot both succeed.
func (l *Ledger) Create(fullName, email, password string) (*models.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var created models.Account
	err = l.store.Update(func(records []models.Account) ([]models.Account, error) {
		for _, a := range records {
			if a.Email == email {
				return nil, ErrEmailTaken
			}
		}
		created = models.Account{
			ID:           store.NextID(records),
			FullName:     fullName,
			Email:        email,
			PasswordHash: string(hash),
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Authenticate verifies email+password. The failure signal is uniform:
// callers cannot tell an unknown email from a wrong password.
func (l *Ledger) Authenticate(email, password string) (*models.Account, error) {
	var found *models.Account
	err := l.store.View(func(records []models.Account) error {
		for i := range records {
			if records[i].Email == email {
				a := records[i]
				found = &a
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if found != nil {
		hash = []byte(found.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil || found == nil {
		return nil, ErrInvalidCredentials
	}
	return found, nil
}
