package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	guestPanelMessage = "Please login to view your cart."
	emptyCartTitle    = "Your cart is empty"
	emptyCartHint     = "Start shopping to add items!"
)

// AccountLabel renders the login icon content: a user glyph and the label.
func AccountLabel(a AccountView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<i class="fas fa-user"></i> `+templ.EscapeString(a.Label))
		return err
	})
}

// CartItems renders the cart panel body.
func CartItems(p PanelView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch p.Kind {
		case PanelGuest:
			_, err := io.WriteString(w, `<p>`+guestPanelMessage+`</p>`)
			return err
		case PanelEmpty:
			_, err := io.WriteString(w, `<div class="empty-cart-message">`+
				`<i class="fas fa-shopping-cart"></i>`+
				`<p>`+emptyCartTitle+`</p>`+
				`<p>`+emptyCartHint+`</p>`+
				`</div>`)
			return err
		}
		for _, r := range p.Rows {
			if err := cartRow(r).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func cartRow(r Row) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		name := templ.EscapeString(r.Name)
		src := templ.EscapeString(string(templ.URL(r.Image)))
		_, err := fmt.Fprintf(w,
			`<div class="cart-item">`+
				`<div class="cart-item-img"><img src="%s" alt="%s"></div>`+
				`<div class="cart-item-details"><p class="cart-item-title">%s</p><p class="cart-item-price">%s</p></div>`+
				`<button class="remove-item" data-index="%d" aria-label="Remove item"><i class="fas fa-trash"></i></button>`+
				`</div>`+"\n",
			src, name, name, templ.EscapeString(r.Price), r.Index)
		return err
	})
}

func renderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
