package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_GuestByDefault(t *testing.T) {
	f := newFixture(t)

	_, ok := f.session.Current(context.Background())
	assert.False(t, ok)
}

func TestSession_SetAndClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ann := models.Identity{Name: "Ann", Email: "a@x.com"}
	require.NoError(t, f.session.SetCurrent(ctx, &ann))

	got, ok := f.session.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, ann, got)

	raw, _ := f.repo.Get(ctx, storage.KeySession)
	assert.JSONEq(t, `{"name":"Ann","email":"a@x.com"}`, string(raw))

	require.NoError(t, f.session.SetCurrent(ctx, nil))
	_, ok = f.session.Current(ctx)
	assert.False(t, ok)

	raw, _ = f.repo.Get(ctx, storage.KeySession)
	assert.Nil(t, raw)
}

func TestSession_SurvivesNewManager(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.session.SetCurrent(ctx, &models.Identity{Name: "Ann", Email: "a@x.com"}))

	reloaded := NewSessionManager(f.store, logging.Nop())
	got, ok := reloaded.Current(ctx)
	require.True(t, ok)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestSession_ListenersRunInOrderAfterPersist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var seen []string
	f.session.OnChange(func(ctx context.Context) {
		id, ok := f.session.Current(ctx)
		if ok {
			seen = append(seen, "first:"+id.Email)
		} else {
			seen = append(seen, "first:guest")
		}
	})
	f.session.OnChange(func(context.Context) { seen = append(seen, "second") })

	require.NoError(t, f.session.SetCurrent(ctx, &models.Identity{Email: "a@x.com"}))
	require.NoError(t, f.session.SetCurrent(ctx, nil))

	assert.Equal(t, []string{"first:a@x.com", "second", "first:guest", "second"}, seen)
}

func TestSession_RejectsIdentityWithoutEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l, calls := counter()
	f.session.OnChange(l)

	err := f.session.SetCurrent(ctx, &models.Identity{Name: "Ann"})
	require.ErrorIs(t, err, common.ErrInvalidIdentity)
	assert.Zero(t, *calls)
}

func TestSession_CorruptRecordIsGuest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.Set(ctx, storage.KeySession, []byte(`{"name":"Ann"`)))
	_, ok := f.session.Current(ctx)
	assert.False(t, ok)

	require.NoError(t, f.repo.Set(ctx, storage.KeySession, []byte(`{"name":"Ann"}`)))
	_, ok = f.session.Current(ctx)
	assert.False(t, ok)
}
