package controller

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

const (
	idNavToggle     = "navToggle"
	idNavItems      = "navItems"
	idCartIcon      = "cart-icon"
	idCartCount     = "cart-count"
	idCartSidebar   = "cart-sidebar"
	idCloseCart     = "close-cart"
	idCheckout      = "checkout-btn"
	idLoginIcon     = "login-icon"
	idLoginModal    = "login-modal"
	idRegisterModal = "register-modal"
	idLoginForm     = "login-form"
	idRegisterForm  = "register-form"
	idOpenRegister  = "open-register"
	idOpenLogin     = "open-login"
	idCloseLogin    = "close-login"
	idCloseRegister = "close-register"

	classDropdown   = "dropdown"
	classAddToCart  = "add-to-cart-btn"
	classRemoveItem = "remove-item"
	classActive     = "active"
	classOpen       = "open"
)

func (c *Controller) toggleNav(_ context.Context, d dispatch) {
	items := c.Doc.GetElementByID(idNavItems)
	if items == nil {
		return
	}
	active := items.ToggleClass(classActive)

	var icon *dom.Element
	for _, ch := range d.el.Children() {
		if ch.Tag == "i" {
			icon = ch
			break
		}
	}
	if icon == nil {
		return
	}
	if active {
		icon.ReplaceClass("fa-bars", "fa-times")
	} else {
		icon.ReplaceClass("fa-times", "fa-bars")
	}
}

// toggleDropdown opens a dropdown on tap on narrow viewports. On wide ones
// the link keeps its default behavior.
func (c *Controller) toggleDropdown(_ context.Context, d dispatch) {
	if c.Doc.ViewportWidth > MobileBreakpoint {
		return
	}
	d.ev.PreventDefault()
	parent := d.el.Parent()
	parent.ToggleClass(classOpen)
	for _, li := range c.Doc.QueryAll(dom.ByClass(classDropdown)) {
		if li != parent {
			li.RemoveClass(classOpen)
		}
	}
}

func (c *Controller) addToCart(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	item := lineItemFrom(d.el)

	err := c.Cart.Add(ctx, item)
	switch {
	case err == nil:
		d.log.Info(ctx, "item added", "name", item.Name, "price", item.Price)
	case errors.Is(err, common.ErrNotLoggedIn):
		c.Prompt.Alert(ctx, MsgLoginToAdd)
	default:
		c.fail(ctx, d, "add to cart", err)
	}
}

// lineItemFrom reads the add-to-cart payload. A price that does not parse,
// or parses to something negative or non-finite, counts as 0.
func lineItemFrom(el *dom.Element) models.LineItem {
	price, err := strconv.ParseFloat(strings.TrimSpace(el.Data("price")), 64)
	if err != nil || price < 0 || math.IsInf(price, 0) || math.IsNaN(price) {
		price = 0
	}
	image := el.Data("image")
	if image == "" {
		image = models.DefaultItemImage
	}
	return models.LineItem{Name: el.Data("name"), Price: price, Image: image}
}

func (c *Controller) removeItem(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	idx, err := strconv.Atoi(d.el.Data("index"))
	if err != nil {
		d.log.Debug(ctx, "remove trigger without a usable index", "index", d.el.Data("index"))
		return
	}
	removed, err := c.Cart.RemoveAt(ctx, idx)
	if err != nil {
		c.fail(ctx, d, "remove from cart", err)
		return
	}
	if removed {
		d.log.Info(ctx, "item removed", "index", idx)
	}
}

func (c *Controller) openCart(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	if sb := c.Doc.GetElementByID(idCartSidebar); sb != nil {
		sb.AddClass(classOpen)
	}
	c.UI.RenderPanel(ctx)
}

func (c *Controller) closeCart(_ context.Context, _ dispatch) {
	if sb := c.Doc.GetElementByID(idCartSidebar); sb != nil {
		sb.RemoveClass(classOpen)
	}
}

func (c *Controller) checkout(ctx context.Context, d dispatch) {
	c.Doc.Navigate(CheckoutURL)
	d.log.Info(ctx, "navigate", "url", CheckoutURL)
}

// account logs out after confirmation when signed in, otherwise opens the
// login modal.
func (c *Controller) account(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	if _, ok := c.Session.Current(ctx); !ok {
		c.transition(ctx, d.log, openLogin)
		return
	}
	if !c.Prompt.Confirm(ctx, MsgConfirmLogout) {
		return
	}
	if err := c.Session.SetCurrent(ctx, nil); err != nil {
		c.fail(ctx, d, "logout", err)
		return
	}
	d.log.Info(ctx, "logged out")
}

func (c *Controller) fail(ctx context.Context, d dispatch, op string, err error) {
	d.log.Error(ctx, op+" failed", "error", err)
	c.Prompt.Alert(ctx, MsgSomethingWrong)
}
