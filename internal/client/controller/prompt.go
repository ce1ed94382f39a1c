package controller

import "context"

// Prompter surfaces messages to the user the way window.alert and
// window.confirm do.
type Prompter interface {
	Alert(ctx context.Context, msg string)
	Confirm(ctx context.Context, msg string) bool
}

// User-visible messages.
const (
	MsgLoginToAdd         = "Please login to add items to your cart."
	MsgEmailRegistered    = "Email already registered"
	MsgInvalidCredentials = "Invalid email or password"
	MsgFillAllFields      = "Please fill in all fields."
	MsgSomethingWrong     = "Something went wrong, please try again."
	MsgConfirmLogout      = "Logout?"
)

// CheckoutURL is where the checkout button navigates.
const CheckoutURL = "/checkout.html"

// MobileBreakpoint is the widest viewport, in CSS pixels, on which dropdowns
// open on tap.
const MobileBreakpoint = 768
