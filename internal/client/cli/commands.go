package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/controller"
	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

type finder func(doc *dom.Document) *dom.Element

func byID(id string) finder {
	return func(doc *dom.Document) *dom.Element { return doc.GetElementByID(id) }
}

// withData finds the first element with class whose data-<name> is value.
func withData(class, name, value string) finder {
	return func(doc *dom.Document) *dom.Element {
		for _, el := range doc.QueryAll(dom.ByClass(class)) {
			if el.Data(name) == value {
				return el
			}
		}
		return nil
	}
}

// click dispatches a click on the element find returns. It reports false
// when there is no such element.
func (a *App) click(ctx context.Context, find finder) (bool, error) {
	found := false
	err := a.loop.Do(ctx, func(ctx context.Context) {
		el := find(a.doc)
		if el == nil {
			return
		}
		found = true
		a.ctrl.Dispatch(ctx, &dom.Event{Type: dom.Click, Target: el})
	})
	return found, err
}

func (a *App) submit(ctx context.Context, formID string, fields map[string]string) (bool, error) {
	found := false
	err := a.loop.Do(ctx, func(ctx context.Context) {
		form := a.doc.GetElementByID(formID)
		if form == nil {
			return
		}
		found = true
		a.ctrl.Dispatch(ctx, &dom.Event{Type: dom.Submit, Target: form, Fields: fields})
	})
	return found, err
}

// snapshot is what the page currently shows, read on the loop.
type snapshot struct {
	view     ui.View
	modal    controller.ModalState
	menuOpen bool
	location string
}

func (a *App) snapshot(ctx context.Context) (snapshot, error) {
	var s snapshot
	err := a.loop.Do(ctx, func(ctx context.Context) {
		s.view = a.sync.View(ctx)
		s.modal = a.ctrl.Modal()
		s.location = a.doc.Location
		if items := a.doc.GetElementByID("navItems"); items != nil {
			s.menuOpen = items.HasClass("active")
		}
	})
	return s, err
}

// status is the REPL prompt decoration.
func (a *App) status(ctx context.Context) string {
	s, err := a.snapshot(ctx)
	if err != nil || !s.view.Account.LoggedIn {
		return "(guest)"
	}
	return fmt.Sprintf("(%s)", s.view.Account.Label)
}

func (a *App) Products(_ context.Context) error {
	for _, p := range a.catalog.Products {
		fmt.Fprintf(a.out, "%-16s %-24s %s\n", p.ID, p.Name, a.money.Format(p.Price))
	}
	return nil
}

func (a *App) Add(ctx context.Context, productID string) error {
	found, err := a.click(ctx, withData(ui.ClassAddToCart, "id", productID))
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(a.out, "Unknown product:", productID)
		return nil
	}
	return a.printBadge(ctx)
}

// Cart opens the cart panel and prints it.
func (a *App) Cart(ctx context.Context) error {
	found, err := a.click(ctx, byID("cart-icon"))
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintln(a.out, "The cart icon is not on the page (navbar not loaded).")
		return nil
	}
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	printPanel(a.out, s.view.Panel)
	return nil
}

func (a *App) Remove(ctx context.Context, index string) error {
	found, err := a.click(ctx, withData("remove-item", "index", index))
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(a.out, "No item %s in the cart panel. Open it with 'cart'.\n", index)
		return nil
	}
	return a.Cart(ctx)
}

func (a *App) CloseCart(ctx context.Context) error {
	_, err := a.click(ctx, byID(ui.IDCloseCart))
	return err
}

func (a *App) signedIn(ctx context.Context) (bool, error) {
	s, err := a.snapshot(ctx)
	return s.view.Account.LoggedIn, err
}

// openLogin clicks the account icon of a guest, which opens the login modal.
// It reports false when the navbar, and with it the icon, is missing.
func (a *App) openLogin(ctx context.Context) (bool, error) {
	found, err := a.click(ctx, byID("login-icon"))
	if err != nil {
		return false, err
	}
	if !found {
		fmt.Fprintln(a.out, "The account icon is not on the page (navbar not loaded).")
	}
	return found, nil
}

// Login opens the login modal, asks for credentials and submits them.
func (a *App) Login(ctx context.Context) error {
	if in, err := a.signedIn(ctx); err != nil || in {
		if in {
			fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		}
		return err
	}
	if ok, err := a.openLogin(ctx); err != nil || !ok {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.submit(ctx, ui.IDLoginForm, map[string]string{
		controller.FieldEmail:    email,
		controller.FieldPassword: string(password),
	}); err != nil {
		return err
	}
	return a.greet(ctx)
}

// Register opens the register modal, asks for the new account and submits it.
func (a *App) Register(ctx context.Context) error {
	if in, err := a.signedIn(ctx); err != nil || in {
		if in {
			fmt.Fprintln(a.out, "Already logged in. Use 'logout' first.")
		}
		return err
	}
	if ok, err := a.openLogin(ctx); err != nil || !ok {
		return err
	}
	if _, err := a.click(ctx, byID(ui.IDOpenRegister)); err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.submit(ctx, ui.IDRegisterForm, map[string]string{
		controller.FieldName:     name,
		controller.FieldEmail:    email,
		controller.FieldPassword: string(password),
	}); err != nil {
		return err
	}
	return a.greet(ctx)
}

func (a *App) greet(ctx context.Context) error {
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if s.view.Account.LoggedIn {
		fmt.Fprintf(a.out, "Welcome, %s!\n", s.view.Account.Label)
		return nil
	}
	// The modal stays open after a failed submit; leave it closed for the shell.
	switch s.modal {
	case controller.ModalLogin:
		_, err = a.click(ctx, byID(ui.IDCloseLogin))
	case controller.ModalRegister:
		_, err = a.click(ctx, byID(ui.IDCloseRegister))
	}
	return err
}

// Logout asks for confirmation through the account control.
func (a *App) Logout(ctx context.Context) error {
	in, err := a.signedIn(ctx)
	if err != nil {
		return err
	}
	if !in {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	if _, err := a.click(ctx, byID("login-icon")); err != nil {
		return err
	}
	if in, err = a.signedIn(ctx); err == nil && !in {
		fmt.Fprintln(a.out, "Logged out.")
	}
	return err
}

func (a *App) Nav(ctx context.Context) error {
	found, err := a.click(ctx, byID("navToggle"))
	if err != nil || !found {
		return err
	}
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if s.menuOpen {
		fmt.Fprintln(a.out, "Menu open")
	} else {
		fmt.Fprintln(a.out, "Menu closed")
	}
	return nil
}

func (a *App) Checkout(ctx context.Context) error {
	if _, err := a.click(ctx, byID(ui.IDCheckout)); err != nil {
		return err
	}
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if s.location != "" {
		fmt.Fprintln(a.out, "Navigating to", s.location)
	}
	return nil
}

// Show prints the account, the badge and the cart panel.
func (a *App) Show(ctx context.Context) error {
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if s.view.Account.LoggedIn {
		fmt.Fprintf(a.out, "Account: %s <%s>\n", s.view.Account.Label, s.view.Account.Email)
	} else {
		fmt.Fprintln(a.out, "Account: guest")
	}
	fmt.Fprintf(a.out, "Cart: %d item(s)\n", s.view.Badge)
	printPanel(a.out, s.view.Panel)
	if s.modal != controller.ModalClosed {
		fmt.Fprintf(a.out, "Modal: %s\n", s.modal)
	}
	return nil
}

func (a *App) printBadge(ctx context.Context) error {
	s, err := a.snapshot(ctx)
	if err != nil {
		return err
	}
	if s.view.Account.LoggedIn {
		fmt.Fprintf(a.out, "Cart: %d item(s)\n", s.view.Badge)
	}
	return nil
}

func printPanel(w io.Writer, p ui.PanelView) {
	switch p.Kind {
	case ui.PanelGuest:
		fmt.Fprintln(w, "Please login to view your cart.")
		return
	case ui.PanelEmpty:
		fmt.Fprintln(w, "Your cart is empty. Start shopping to add items!")
	default:
		for _, r := range p.Rows {
			fmt.Fprintf(w, "  [%s] %-24s %s\n", strconv.Itoa(r.Index), r.Name, r.Price)
		}
	}
	fmt.Fprintln(w, "Total:", p.Total)
}
