package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/dom"
	"github.com/dmitrijs2005/storefront/internal/client/fragments"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/client/ui"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

const (
	idCartItems = "cart-items"
	idCartTotal = "cart-total"
)

type fakePrompt struct {
	alerts   []string
	confirms []string
	answer   bool
}

func (p *fakePrompt) Alert(_ context.Context, msg string) { p.alerts = append(p.alerts, msg) }

func (p *fakePrompt) Confirm(_ context.Context, msg string) bool {
	p.confirms = append(p.confirms, msg)
	return p.answer
}

var products = []models.Product{
	{ID: "tee", Name: "Tee", Price: 199, Image: "images/tee.jpg"},
	{ID: "mug", Name: "Mug", Price: 250.5, Image: "images/mug.jpg"},
}

// env is a fully wired page over an in-memory store.
type env struct {
	ctx     context.Context
	doc     *dom.Document
	users   *services.UserDirectory
	session *services.SessionManager
	cart    *services.CartStore
	prompt  *fakePrompt
	ctrl    *Controller
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	nop := logging.Nop()

	store := storage.New(kv.NewMemoryRepository(), nop)
	session := services.NewSessionManager(store, nop)
	cart := services.NewCartStore(store, session, nop)
	users := services.NewUserDirectory(store, nop)

	doc := dom.NewDocument()
	require.NoError(t, ui.Mount(ctx, doc, products, ui.DefaultMoney()))
	nav, err := fragments.Builtin().Fetch(ctx, "navbar.html")
	require.NoError(t, err)
	doc.GetElementByID(ui.IDNavbar).SetHTML(string(nav))

	sync := ui.NewSynchronizer(doc, session, cart, ui.DefaultMoney(), nop)
	session.OnChange(sync.Render)
	cart.OnChange(sync.RenderCart)
	sync.Render(ctx)

	prompt := &fakePrompt{}
	return &env{
		ctx:     ctx,
		doc:     doc,
		users:   users,
		session: session,
		cart:    cart,
		prompt:  prompt,
		ctrl: New(Deps{
			Doc: doc, Users: users, Session: session, Cart: cart,
			UI: sync, Prompt: prompt, Log: nop,
		}),
	}
}

func (e *env) el(t *testing.T, id string) *dom.Element {
	t.Helper()
	el := e.doc.GetElementByID(id)
	require.NotNil(t, el, "missing #%s", id)
	return el
}

func (e *env) click(t *testing.T, id string) *dom.Event {
	t.Helper()
	return e.clickOn(e.el(t, id))
}

func (e *env) clickOn(target *dom.Element) *dom.Event {
	ev := &dom.Event{Type: dom.Click, Target: target}
	e.ctrl.Dispatch(e.ctx, ev)
	return ev
}

func (e *env) submit(t *testing.T, formID string, fields map[string]string) *dom.Event {
	t.Helper()
	ev := &dom.Event{Type: dom.Submit, Target: e.el(t, formID), Fields: fields}
	e.ctrl.Dispatch(e.ctx, ev)
	return ev
}

func (e *env) register(t *testing.T, name, email, password string) {
	t.Helper()
	e.click(t, idLoginIcon)
	e.click(t, idOpenRegister)
	e.submit(t, idRegisterForm, map[string]string{FieldName: name, FieldEmail: email, FieldPassword: password})
}

func (e *env) addButton(t *testing.T, productID string) *dom.Element {
	t.Helper()
	for _, b := range e.doc.QueryAll(dom.ByClass(classAddToCart)) {
		if b.Data("id") == productID {
			return b
		}
	}
	t.Fatalf("no add-to-cart button for %s", productID)
	return nil
}

func (e *env) badge(t *testing.T) string {
	t.Helper()
	return e.el(t, idCartCount).Text
}
