// Package common defines sentinel errors shared by the storefront client
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Expected-state errors: surfaced to the user, the operation is not performed.
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotLoggedIn        = errors.New("please login to add items to your cart")

	// Validation errors for values that should never reach the store.
	ErrInvalidIdentity = errors.New("identity has no email")
	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidLineItem = errors.New("line item price must be a non-negative number")
)
