// Package controller translates DOM events into calls on the session, user
// and cart services, and owns the transient page state (auth modals, nav
// menu, dropdowns).
package controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type userDirectory interface {
	Register(ctx context.Context, name, email, password string) error
	Authenticate(ctx context.Context, email, password string) (models.UserRecord, error)
}

type sessionManager interface {
	Current(ctx context.Context) (models.Identity, bool)
	SetCurrent(ctx context.Context, id *models.Identity) error
}

type cartStore interface {
	Add(ctx context.Context, item models.LineItem) error
	RemoveAt(ctx context.Context, index int) (bool, error)
}

type panelRenderer interface {
	RenderPanel(ctx context.Context)
}

// Deps are the collaborators a Controller drives.
type Deps struct {
	Doc     *dom.Document
	Users   userDirectory
	Session sessionManager
	Cart    cartStore
	UI      panelRenderer
	Prompt  Prompter
	Log     logging.Logger
}

// dispatch is one event being handled.
type dispatch struct {
	ev  *dom.Event
	el  *dom.Element // the element the route matched
	log logging.Logger
}

type handler func(ctx context.Context, d dispatch)

// route matches an event type and the nearest target-or-ancestor accepted by
// match. When exact is set only the target itself is considered.
type route struct {
	name   string
	typ    dom.EventType
	match  dom.Matcher
	exact  bool
	handle handler
}

type Controller struct {
	Deps
	routes []route
	modal  ModalState
}

func New(deps Deps) *Controller {
	c := &Controller{Deps: deps}
	c.routes = c.buildRoutes()
	c.applyModal()
	return c
}

// Modal reports the auth modal state.
func (c *Controller) Modal() ModalState { return c.modal }

// Dispatch routes ev to the first matching handler and reports whether one ran.
func (c *Controller) Dispatch(ctx context.Context, ev *dom.Event) bool {
	if ev == nil || ev.Target == nil {
		return false
	}
	for _, r := range c.routes {
		if r.typ != ev.Type {
			continue
		}
		el := c.matchTarget(r, ev.Target)
		if el == nil {
			continue
		}
		log := c.Log.With("event_id", uuid.NewString(), "event", string(ev.Type), "route", r.name)
		log.Debug(ctx, "dispatch")
		r.handle(ctx, dispatch{ev: ev, el: el, log: log})
		return true
	}
	return false
}

func (c *Controller) matchTarget(r route, target *dom.Element) *dom.Element {
	if r.exact {
		if r.match(target) {
			return target
		}
		return nil
	}
	return target.Closest(r.match)
}

func (c *Controller) buildRoutes() []route {
	return []route{
		{name: "nav-toggle", typ: dom.Click, match: dom.ByID(idNavToggle), handle: c.toggleNav},
		{name: "dropdown", typ: dom.Click, match: dom.ChildOf(dom.ByClass(classDropdown), dom.ByTag("a")), handle: c.toggleDropdown},
		{name: "add-to-cart", typ: dom.Click, match: dom.ByClass(classAddToCart), handle: c.addToCart},
		{name: "remove-item", typ: dom.Click, match: dom.ByClass(classRemoveItem), handle: c.removeItem},
		{name: "open-cart", typ: dom.Click, match: dom.Any(dom.ByID(idCartIcon), dom.ByID(idCartCount)), handle: c.openCart},
		{name: "close-cart", typ: dom.Click, match: dom.ByID(idCloseCart), handle: c.closeCart},
		{name: "checkout", typ: dom.Click, match: dom.ByID(idCheckout), handle: c.checkout},
		{name: "account", typ: dom.Click, match: dom.ByID(idLoginIcon), handle: c.account},
		{name: "open-register", typ: dom.Click, match: dom.ByID(idOpenRegister), handle: c.modalStep(switchToRegister)},
		{name: "open-login", typ: dom.Click, match: dom.ByID(idOpenLogin), handle: c.modalStep(switchToLogin)},
		{name: "close-login", typ: dom.Click, match: dom.ByID(idCloseLogin), handle: c.modalStep(closeLogin)},
		{name: "close-register", typ: dom.Click, match: dom.ByID(idCloseRegister), handle: c.modalStep(closeRegister)},
		{name: "login-backdrop", typ: dom.Click, match: dom.ByID(idLoginModal), exact: true, handle: c.modalStep(closeLogin)},
		{name: "register-backdrop", typ: dom.Click, match: dom.ByID(idRegisterModal), exact: true, handle: c.modalStep(closeRegister)},
		{name: "register", typ: dom.Submit, match: dom.ByID(idRegisterForm), handle: c.register},
		{name: "login", typ: dom.Submit, match: dom.ByID(idLoginForm), handle: c.login},
	}
}

func (c *Controller) modalStep(a modalAction) handler {
	return func(ctx context.Context, d dispatch) {
		d.ev.PreventDefault()
		c.transition(ctx, d.log, a)
	}
}

func (c *Controller) transition(ctx context.Context, log logging.Logger, a modalAction) {
	next, ok := c.modal.next(a)
	if !ok {
		log.Debug(ctx, "modal transition ignored", "from", c.modal.String())
		return
	}
	c.modal = next
	c.applyModal()
}

// applyModal reflects the modal state into the modals' display style.
func (c *Controller) applyModal() {
	show := func(id string, open bool) {
		el := c.Doc.GetElementByID(id)
		if el == nil {
			return
		}
		if open {
			el.Display = "flex"
		} else {
			el.Display = "none"
		}
	}
	show(idLoginModal, c.modal == ModalLogin)
	show(idRegisterModal, c.modal == ModalRegister)
}
