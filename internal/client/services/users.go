// Package services holds the storefront's state components: the user
// directory, the session manager and the per-user cart store. All of them
// keep their state in the local store through storage.Adapter.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// UserDirectory registers and authenticates users against the list kept
// under storage.KeyUsers.
//
// Emails are unique case-insensitively. Passwords are compared in plaintext
// because that is how they are stored.
type UserDirectory struct {
	store *storage.Adapter
	log   logging.Logger
}

func NewUserDirectory(store *storage.Adapter, log logging.Logger) *UserDirectory {
	return &UserDirectory{store: store, log: log}
}

// List returns every registered user in insertion order.
func (d *UserDirectory) List(ctx context.Context) []models.UserRecord {
	return storage.ReadList[models.UserRecord](ctx, d.store, storage.KeyUsers)
}

// Register appends a new user. It returns common.ErrEmptyEmail for a blank
// email and common.ErrDuplicateEmail when the email is already taken,
// ignoring case.
func (d *UserDirectory) Register(ctx context.Context, name, email, password string) error {
	if strings.TrimSpace(email) == "" {
		return common.ErrEmptyEmail
	}

	users := d.List(ctx)
	for _, u := range users {
		if models.SameEmail(u.Email, email) {
			return common.ErrDuplicateEmail
		}
	}

	users = append(users, models.UserRecord{Name: name, Email: email, Password: password})
	if err := d.store.Write(ctx, storage.KeyUsers, users); err != nil {
		return fmt.Errorf("register: %w", err)
	}

	d.log.Info(ctx, "user registered", "email", email)
	return nil
}

// Authenticate returns the first user whose email matches ignoring case and
// whose password matches exactly. Any mismatch yields
// common.ErrInvalidCredentials without saying which part was wrong.
func (d *UserDirectory) Authenticate(ctx context.Context, email, password string) (models.UserRecord, error) {
	for _, u := range d.List(ctx) {
		if models.SameEmail(u.Email, email) &&
			subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			return u, nil
		}
	}
	return models.UserRecord{}, common.ErrInvalidCredentials
}
