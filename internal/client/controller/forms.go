package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// Form field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// register and login only act on the form of the open modal; a hidden form
// cannot be submitted.
func (c *Controller) register(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	if c.modal != ModalRegister {
		d.log.Debug(ctx, "submit ignored, modal not open", "modal", c.modal.String())
		return
	}
	name := strings.TrimSpace(d.ev.Field(FieldName))
	email := strings.TrimSpace(d.ev.Field(FieldEmail))
	password := d.ev.Field(FieldPassword)
	if email == "" || password == "" {
		c.Prompt.Alert(ctx, MsgFillAllFields)
		return
	}

	err := c.Users.Register(ctx, name, email, password)
	switch {
	case errors.Is(err, common.ErrEmptyEmail):
		c.Prompt.Alert(ctx, MsgFillAllFields)
		return
	case errors.Is(err, common.ErrDuplicateEmail):
		c.Prompt.Alert(ctx, MsgEmailRegistered)
		return
	case err != nil:
		c.fail(ctx, d, "register", err)
		return
	}

	if err := c.Session.SetCurrent(ctx, &models.Identity{Name: name, Email: email}); err != nil {
		c.fail(ctx, d, "start session", err)
		return
	}
	c.transition(ctx, d.log, authSucceeded)
}

func (c *Controller) login(ctx context.Context, d dispatch) {
	d.ev.PreventDefault()
	if c.modal != ModalLogin {
		d.log.Debug(ctx, "submit ignored, modal not open", "modal", c.modal.String())
		return
	}
	email := strings.TrimSpace(d.ev.Field(FieldEmail))
	password := d.ev.Field(FieldPassword)

	u, err := c.Users.Authenticate(ctx, email, password)
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		c.Prompt.Alert(ctx, MsgInvalidCredentials)
		return
	case err != nil:
		c.fail(ctx, d, "login", err)
		return
	}

	id := u.Identity()
	if err := c.Session.SetCurrent(ctx, &id); err != nil {
		c.fail(ctx, d, "start session", err)
		return
	}
	d.log.Info(ctx, "logged in", "email", u.Email)
	c.transition(ctx, d.log, authSucceeded)
}
