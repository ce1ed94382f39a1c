// Package ui projects session and cart state into what the page shows and
// writes it into the document.
package ui

import "github.com/dmitrijs2005/storefront/internal/client/models"

const AccountFallbackLabel = "Account"

type PanelKind int

const (
	PanelGuest PanelKind = iota
	PanelEmpty
	PanelItems
)

func (k PanelKind) String() string {
	switch k {
	case PanelGuest:
		return "guest"
	case PanelEmpty:
		return "empty"
	case PanelItems:
		return "items"
	default:
		return "unknown"
	}
}

type AccountView struct {
	Label    string
	LoggedIn bool
	Email    string
}

// Row is one cart line as displayed; Index is its position in the cart.
type Row struct {
	Index int
	Name  string
	Image string
	Price string
}

type PanelView struct {
	Kind  PanelKind
	Rows  []Row
	Total string
}

// View is everything the page derives from state.
type View struct {
	Account AccountView
	Badge   int
	Panel   PanelView
}

// Project maps the current identity (nil for a guest) and that identity's
// cart to a View. It has no side effects.
func Project(id *models.Identity, cart []models.LineItem, money Money) View {
	if id == nil || !id.Valid() {
		return View{
			Account: AccountView{Label: AccountFallbackLabel},
			Panel:   PanelView{Kind: PanelGuest, Total: money.Format(0)},
		}
	}

	v := View{
		Account: AccountView{Label: id.ShortName(), LoggedIn: true, Email: id.Email},
		Badge:   len(cart),
		Panel:   PanelView{Kind: PanelEmpty, Total: money.Format(models.CartTotal(cart))},
	}
	if len(cart) == 0 {
		return v
	}

	v.Panel.Kind = PanelItems
	v.Panel.Rows = make([]Row, 0, len(cart))
	for i, it := range cart {
		v.Panel.Rows = append(v.Panel.Rows, Row{
			Index: i,
			Name:  it.Name,
			Image: it.Image,
			Price: money.Format(it.Price),
		})
	}
	return v
}
