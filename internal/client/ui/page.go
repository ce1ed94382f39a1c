package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Ids of the page shell outside the cart panel.
const (
	IDNavbar        = "navbar"
	IDFooter        = "footer"
	IDCloseCart     = "close-cart"
	IDCheckout      = "checkout-btn"
	IDLoginModal    = "login-modal"
	IDRegisterModal = "register-modal"
	IDLoginForm     = "login-form"
	IDRegisterForm  = "register-form"
	IDOpenRegister  = "open-register"
	IDOpenLogin     = "open-login"
	IDCloseLogin    = "close-login"
	IDCloseRegister = "close-register"

	ClassAddToCart = "add-to-cart-btn"
)

// Page renders the static page body: empty navbar and footer slots filled
// later by fragments, the product grid, the cart sidebar and both auth modals.
func Page(products []models.Product, money Money) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="navbar"></div><main class="products">`); err != nil {
			return err
		}
		for _, p := range products {
			if err := productCard(p, money).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main>`+cartSidebar+loginModal+registerModal+`<div id="footer"></div>`)
		return err
	})
}

func productCard(p models.Product, money Money) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		name := templ.EscapeString(p.Name)
		img := templ.EscapeString(string(templ.URL(p.Image)))
		_, err := fmt.Fprintf(w,
			`<div class="product-card"><img src="%s" alt="%s"><h3>%s</h3><p class="price">%s</p>`+
				`<button class="add-to-cart-btn" data-id="%s" data-name="%s" data-price="%s" data-image="%s">`+
				`<i class="fas fa-cart-plus"></i> Add to Cart</button></div>`,
			img, name, name, templ.EscapeString(money.Format(p.Price)),
			templ.EscapeString(p.ID), name, strconv.FormatFloat(p.Price, 'f', -1, 64), img)
		return err
	})
}

const cartSidebar = `<div id="cart-sidebar" class="cart-sidebar">` +
	`<div class="cart-header"><h3>Your Cart</h3><button id="close-cart" aria-label="Close cart"><i class="fas fa-times"></i></button></div>` +
	`<div id="cart-items" class="cart-items"></div>` +
	`<div class="cart-footer"><p>Total: <span id="cart-total">₹0.00</span></p><button id="checkout-btn">Checkout</button></div>` +
	`</div>`

const loginModal = `<div id="login-modal" class="modal"><div class="modal-content">` +
	`<span id="close-login" class="close">&times;</span><h2>Login</h2>` +
	`<form id="login-form"><input type="email" name="email" required><input type="password" name="password" required>` +
	`<button type="submit">Login</button></form>` +
	`<p>New here? <a href="#" id="open-register">Create an account</a></p>` +
	`</div></div>`

const registerModal = `<div id="register-modal" class="modal"><div class="modal-content">` +
	`<span id="close-register" class="close">&times;</span><h2>Register</h2>` +
	`<form id="register-form"><input type="text" name="name"><input type="email" name="email" required>` +
	`<input type="password" name="password" required><button type="submit">Register</button></form>` +
	`<p>Already registered? <a href="#" id="open-login">Login</a></p>` +
	`</div></div>`

// Mount renders Page into a fresh document body. Both modals start hidden.
func Mount(ctx context.Context, doc *dom.Document, products []models.Product, money Money) error {
	html, err := renderString(ctx, Page(products, money))
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	doc.Body().SetHTML(html)
	for _, id := range []string{IDLoginModal, IDRegisterModal} {
		if el := doc.GetElementByID(id); el != nil {
			el.Display = "none"
		}
	}
	return nil
}
