package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_AppendsInOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "Ann", "ann@x.com", "p1"))
	require.NoError(t, f.users.Register(ctx, "Bob", "bob@x.com", "p2"))

	users := f.users.List(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, models.UserRecord{Name: "Ann", Email: "ann@x.com", Password: "p1"}, users[0])
	assert.Equal(t, "bob@x.com", users[1].Email)

	raw, err := f.repo.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"Ann","email":"ann@x.com","password":"p1"},
		{"name":"Bob","email":"bob@x.com","password":"p2"}
	]`, string(raw))
}

func TestRegister_DuplicateEmailIgnoresCase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "Ann", "A@x.com", "p"))

	err := f.users.Register(ctx, "Other Ann", "a@X.com", "q")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)
	assert.Len(t, f.users.List(ctx), 1)
}

func TestAuthenticate_CaseInsensitiveEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.users.Register(ctx, "Ann", "A@x.com", "p"))

	u, err := f.users.Authenticate(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, "A@x.com", u.Email)
}

func TestAuthenticate_Failures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.users.Register(ctx, "Ann", "ann@x.com", "Secret"))

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "ann@x.com", "nope"},
		{"password is case sensitive", "ann@x.com", "secret"},
		{"unknown email", "zed@x.com", "Secret"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Authenticate(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, common.ErrInvalidCredentials)
		})
	}
}

func TestList_CorruptStoreIsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Set(ctx, storage.KeyUsers, []byte("][")))
	assert.Empty(t, f.users.List(ctx))

	// Registration recovers by starting a fresh list.
	require.NoError(t, f.users.Register(ctx, "Ann", "ann@x.com", "p"))
	assert.Len(t, f.users.List(ctx), 1)
}

func TestRegister_KeepsUsersNextToMalformedRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Set(ctx, storage.KeyUsers, []byte(`[
		{"name":"Ann","email":"a@x.com","password":"p"},
		{"name":7,"email":"b@x.com","password":"q"}
	]`)))

	require.NoError(t, f.users.Register(ctx, "Cid", "c@x.com", "r"))

	u, err := f.users.Authenticate(ctx, "a@x.com", "p")
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)

	users := f.users.List(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "a@x.com", users[0].Email)
	assert.Equal(t, "c@x.com", users[1].Email)
}

func TestRegister_RejectsBlankEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, email := range []string{"", "   "} {
		err := f.users.Register(ctx, "Ann", email, "p")
		require.ErrorIs(t, err, common.ErrEmptyEmail)
	}

	raw, err := f.repo.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Nil(t, raw, "nothing is written")
}

func TestList_SkipsRecordsWithoutEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Set(ctx, storage.KeyUsers, []byte(`[{"name":"ghost"},{"name":"Ann","email":"a@x.com","password":"p"}]`)))

	users := f.users.List(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "Ann", users[0].Name)
}
