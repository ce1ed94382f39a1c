package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestRegister_SignsInAndCloses(t *testing.T) {
	e := newEnv(t)

	e.click(t, idLoginIcon)
	e.click(t, idOpenRegister)
	ev := e.submit(t, idRegisterForm, map[string]string{
		FieldName: "  Ann Lee ", FieldEmail: " ann@x.io ", FieldPassword: " pw ",
	})

	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, ModalClosed, e.ctrl.Modal())
	assert.Empty(t, e.prompt.alerts)

	id, ok := e.session.Current(e.ctx)
	require.True(t, ok)
	assert.Equal(t, models.Identity{Name: "Ann Lee", Email: "ann@x.io"}, id)

	users := e.users.List(e.ctx)
	require.Len(t, users, 1)
	assert.Equal(t, " pw ", users[0].Password, "passwords are stored as typed")

	icon := e.el(t, idLoginIcon)
	assert.Equal(t, `<i class="fas fa-user"></i> Ann`, icon.HTML)
	assert.Equal(t, "true", icon.Data("logged"))
	assert.Equal(t, "ann@x.io", icon.Data("user-email"))
}

func TestRegister_DuplicateKeepsModalOpen(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.users.Register(e.ctx, "Ann", "ann@x.io", "pw"))

	e.register(t, "Other", "ANN@x.io", "pw2")

	assert.Equal(t, []string{MsgEmailRegistered}, e.prompt.alerts)
	assert.Equal(t, ModalRegister, e.ctrl.Modal())
	_, ok := e.session.Current(e.ctx)
	assert.False(t, ok)
	assert.Len(t, e.users.List(e.ctx), 1)
}

func TestRegister_RequiresEmailAndPassword(t *testing.T) {
	e := newEnv(t)

	e.register(t, "Ann", "   ", "pw")
	e.submit(t, idRegisterForm, map[string]string{FieldEmail: "ann@x.io"})

	assert.Equal(t, []string{MsgFillAllFields, MsgFillAllFields}, e.prompt.alerts)
	assert.Empty(t, e.users.List(e.ctx))
	assert.Equal(t, ModalRegister, e.ctrl.Modal())
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.users.Register(e.ctx, "Bo Diddley", "Bo@x.io", "secret"))

	e.click(t, idLoginIcon)
	e.submit(t, idLoginForm, map[string]string{FieldEmail: "bo@x.io", FieldPassword: "wrong"})
	e.submit(t, idLoginForm, map[string]string{FieldEmail: "nobody@x.io", FieldPassword: "secret"})

	assert.Equal(t, []string{MsgInvalidCredentials, MsgInvalidCredentials}, e.prompt.alerts,
		"unknown email and wrong password look the same")
	assert.Equal(t, ModalLogin, e.ctrl.Modal())

	e.submit(t, idLoginForm, map[string]string{FieldEmail: "  BO@X.IO", FieldPassword: "secret"})

	assert.Equal(t, ModalClosed, e.ctrl.Modal())
	id, ok := e.session.Current(e.ctx)
	require.True(t, ok)
	assert.Equal(t, models.Identity{Name: "Bo Diddley", Email: "Bo@x.io"}, id)
	assert.Equal(t, `<i class="fas fa-user"></i> Bo`, e.el(t, idLoginIcon).HTML)
}

func TestSubmit_IgnoredWhileModalClosed(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.users.Register(e.ctx, "Bo", "bo@x.io", "secret"))

	ev := e.submit(t, idLoginForm, map[string]string{FieldEmail: "bo@x.io", FieldPassword: "secret"})
	assert.True(t, ev.DefaultPrevented())
	e.submit(t, idRegisterForm, map[string]string{FieldName: "Cy", FieldEmail: "cy@x.io", FieldPassword: "pw"})

	_, ok := e.session.Current(e.ctx)
	assert.False(t, ok)
	assert.Len(t, e.users.List(e.ctx), 1)
	assert.Empty(t, e.prompt.alerts)
	assert.Equal(t, ModalClosed, e.ctrl.Modal())
}

func TestSubmit_OnlyTheOpenFormActs(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.users.Register(e.ctx, "Bo", "bo@x.io", "secret"))

	e.click(t, idLoginIcon)
	e.submit(t, idRegisterForm, map[string]string{FieldName: "Cy", FieldEmail: "cy@x.io", FieldPassword: "pw"})
	assert.Len(t, e.users.List(e.ctx), 1, "register form is hidden while login is open")

	e.click(t, idOpenRegister)
	e.submit(t, idLoginForm, map[string]string{FieldEmail: "bo@x.io", FieldPassword: "secret"})
	_, ok := e.session.Current(e.ctx)
	assert.False(t, ok, "login form is hidden while register is open")
	assert.Equal(t, ModalRegister, e.ctrl.Modal())
}

func TestLogout_RequiresConfirmation(t *testing.T) {
	e := newEnv(t)
	e.register(t, "Ann", "ann@x.io", "pw")
	e.clickOn(e.addButton(t, "tee"))

	e.prompt.answer = false
	e.click(t, idLoginIcon)
	_, ok := e.session.Current(e.ctx)
	assert.True(t, ok, "declined logout keeps the session")
	assert.Equal(t, ModalClosed, e.ctrl.Modal())

	e.prompt.answer = true
	e.click(t, idLoginIcon)
	_, ok = e.session.Current(e.ctx)
	assert.False(t, ok)
	assert.Equal(t, []string{MsgConfirmLogout, MsgConfirmLogout}, e.prompt.confirms)

	assert.Equal(t, "0", e.badge(t))
	assert.Equal(t, `<i class="fas fa-user"></i> Account`, e.el(t, idLoginIcon).HTML)
	assert.Equal(t, "Please login to view your cart.", e.el(t, idCartItems).Text)
}
