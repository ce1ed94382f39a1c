// Package models defines the records the storefront client keeps in its
// local key-value store.
package models

import "strings"

// UserRecord is a registered account. Records are appended on registration
// and never mutated or deleted.
//
// Password is stored in plaintext; the storefront has no server-side auth and
// does not claim any protection for it.
type UserRecord struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Valid reports whether the record can take part in lookups.
func (u UserRecord) Valid() bool {
	return strings.TrimSpace(u.Email) != ""
}

// Identity returns the session identity of the record.
func (u UserRecord) Identity() Identity {
	return Identity{Name: u.Name, Email: u.Email}
}

// SameEmail compares emails case-insensitively.
func SameEmail(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Identity is the authenticated user persisted as the session record.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Valid reports whether the identity selects a cart.
func (i Identity) Valid() bool {
	return strings.TrimSpace(i.Email) != ""
}

// ShortName is the first word of the name, or of the email when the name is blank.
func (i Identity) ShortName() string {
	src := i.Name
	if strings.TrimSpace(src) == "" {
		src = i.Email
	}
	fields := strings.Fields(src)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
