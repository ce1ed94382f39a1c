package ui

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Element ids the synchronizer writes into.
const (
	IDLoginIcon   = "login-icon"
	IDCartCount   = "cart-count"
	IDCartItems   = "cart-items"
	IDCartTotal   = "cart-total"
	IDCartSidebar = "cart-sidebar"

	ClassOpen = "open"
)

type sessionSource interface {
	Current(ctx context.Context) (models.Identity, bool)
}

type cartSource interface {
	Get(ctx context.Context) []models.LineItem
}

// Synchronizer keeps the account label, cart badge and cart panel in the
// document consistent with the session and cart. Rendering reads the stores
// afresh every time, so calling it twice in a row changes nothing.
type Synchronizer struct {
	doc     *dom.Document
	session sessionSource
	cart    cartSource
	money   Money
	log     logging.Logger
}

func NewSynchronizer(doc *dom.Document, session sessionSource, cart cartSource, money Money, log logging.Logger) *Synchronizer {
	return &Synchronizer{doc: doc, session: session, cart: cart, money: money, log: log}
}

// View projects the current state without touching the document.
func (s *Synchronizer) View(ctx context.Context) View {
	id, ok := s.session.Current(ctx)
	if !ok {
		return Project(nil, nil, s.money)
	}
	return Project(&id, s.cart.Get(ctx), s.money)
}

// Render refreshes everything: account label, badge and panel.
func (s *Synchronizer) Render(ctx context.Context) {
	v := s.View(ctx)
	s.renderAccount(ctx, v.Account)
	s.renderBadge(v.Badge)
	s.renderPanel(ctx, v.Panel)
}

// RenderCart refreshes the badge, and the panel only while the sidebar is open.
func (s *Synchronizer) RenderCart(ctx context.Context) {
	v := s.View(ctx)
	s.renderBadge(v.Badge)
	if sb := s.doc.GetElementByID(IDCartSidebar); sb != nil && sb.HasClass(ClassOpen) {
		s.renderPanel(ctx, v.Panel)
	}
}

// RenderPanel refreshes the panel regardless of the sidebar state.
func (s *Synchronizer) RenderPanel(ctx context.Context) {
	s.renderPanel(ctx, s.View(ctx).Panel)
}

func (s *Synchronizer) renderAccount(ctx context.Context, a AccountView) {
	el := s.doc.GetElementByID(IDLoginIcon)
	if el == nil {
		return
	}
	html, err := renderString(ctx, AccountLabel(a))
	if err != nil {
		s.log.Error(ctx, "render account label", "error", err)
		return
	}
	el.SetHTML(html)
	if a.LoggedIn {
		el.SetData("logged", "true")
		el.SetData("user-email", a.Email)
		return
	}
	el.RemoveAttr("data-logged")
	el.RemoveAttr("data-user-email")
}

func (s *Synchronizer) renderBadge(n int) {
	if el := s.doc.GetElementByID(IDCartCount); el != nil {
		el.SetText(strconv.Itoa(n))
	}
}

func (s *Synchronizer) renderPanel(ctx context.Context, p PanelView) {
	items := s.doc.GetElementByID(IDCartItems)
	total := s.doc.GetElementByID(IDCartTotal)
	if items == nil || total == nil {
		return
	}
	html, err := renderString(ctx, CartItems(p))
	if err != nil {
		s.log.Error(ctx, "render cart items", "error", err)
		return
	}
	items.SetHTML(html)
	total.SetText(p.Total)
}
