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

var (
	tee = models.LineItem{Name: "Tee", Price: 499, Image: "images/tee.jpg"}
	mug = models.LineItem{Name: "Mug", Price: 199.5, Image: "images/mug.jpg"}
	hat = models.LineItem{Name: "Hat", Price: 0, Image: models.DefaultItemImage}
)

func signIn(t *testing.T, f *fixture, email string) {
	t.Helper()
	require.NoError(t, f.session.SetCurrent(context.Background(), &models.Identity{Name: "U", Email: email}))
}

func TestCart_GuestAddIsRefused(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	l, calls := counter()
	f.cart.OnChange(l)

	err := f.cart.Add(ctx, tee)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	assert.Empty(t, f.cart.Get(ctx))
	assert.Empty(t, f.store.Keys(ctx, storage.CartKeyPrefix))
	assert.Zero(t, *calls)
}

func TestCart_AddAppendsWithoutMerging(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")

	require.NoError(t, f.cart.Add(ctx, tee))
	require.NoError(t, f.cart.Add(ctx, tee))
	require.NoError(t, f.cart.Add(ctx, mug))

	assert.Equal(t, []models.LineItem{tee, tee, mug}, f.cart.Get(ctx))

	raw, _ := f.repo.Get(ctx, "cart_a@x.com")
	assert.Contains(t, string(raw), `"name":"Mug"`)
}

func TestCart_RejectsNegativePrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")

	err := f.cart.Add(ctx, models.LineItem{Name: "Bad", Price: -1})
	require.ErrorIs(t, err, common.ErrInvalidLineItem)
	assert.Empty(t, f.cart.Get(ctx))
}

func TestCart_PerUserIsolationAndPersistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signIn(t, f, "a@x.com")
	require.NoError(t, f.cart.Add(ctx, mug))
	before := f.cart.Get(ctx)

	require.NoError(t, f.cart.Add(ctx, tee))

	signIn(t, f, "b@x.com")
	assert.Empty(t, f.cart.Get(ctx))
	require.NoError(t, f.cart.Add(ctx, hat))

	signIn(t, f, "a@x.com")
	assert.Equal(t, append(before, tee), f.cart.Get(ctx))

	signIn(t, f, "b@x.com")
	assert.Equal(t, []models.LineItem{hat}, f.cart.Get(ctx))
}

func TestCart_LogoutHidesCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")
	require.NoError(t, f.cart.Add(ctx, tee))

	require.NoError(t, f.session.SetCurrent(ctx, nil))
	assert.Empty(t, f.cart.Get(ctx))

	// The cart itself is kept for the next sign-in.
	assert.Equal(t, []string{"cart_a@x.com"}, f.store.Keys(ctx, storage.CartKeyPrefix))
}

func TestCart_RemoveAtPreservesOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")
	for _, it := range []models.LineItem{tee, mug, hat} {
		require.NoError(t, f.cart.Add(ctx, it))
	}

	removed, err := f.cart.RemoveAt(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []models.LineItem{tee, hat}, f.cart.Get(ctx))
}

func TestCart_RemoveAtOutOfRangeIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")
	require.NoError(t, f.cart.Add(ctx, tee))
	require.NoError(t, f.cart.Add(ctx, mug))

	l, calls := counter()
	f.cart.OnChange(l)

	for _, idx := range []int{2, 3, 100, -1} {
		removed, err := f.cart.RemoveAt(ctx, idx)
		require.NoError(t, err)
		assert.False(t, removed, "index %d", idx)
	}

	assert.Equal(t, []models.LineItem{tee, mug}, f.cart.Get(ctx))
	assert.Zero(t, *calls)
}

func TestCart_RemoveAtAsGuestIsNoop(t *testing.T) {
	f := newFixture(t)

	removed, err := f.cart.RemoveAt(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestCart_ListenersRunAfterEveryMutation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")

	var lengths []int
	f.cart.OnChange(func(ctx context.Context) { lengths = append(lengths, len(f.cart.Get(ctx))) })

	require.NoError(t, f.cart.Add(ctx, tee))
	require.NoError(t, f.cart.Add(ctx, mug))
	_, err := f.cart.RemoveAt(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 1}, lengths)
}

func TestCart_AddKeepsItemsNextToMalformedOne(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")

	require.NoError(t, f.repo.Set(ctx, "cart_a@x.com", []byte(`[
		{"name":"Tee","price":499,"image":"images/tee.jpg"},
		{"name":"Bad","price":"5","image":""}
	]`)))
	assert.Equal(t, []models.LineItem{tee}, f.cart.Get(ctx))

	require.NoError(t, f.cart.Add(ctx, mug))
	assert.Equal(t, []models.LineItem{tee, mug}, f.cart.Get(ctx))
}

func TestCart_CorruptCartReadsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signIn(t, f, "a@x.com")

	require.NoError(t, f.repo.Set(ctx, "cart_a@x.com", []byte(`[{"name":"Tee","price":"free"}]`)))
	assert.Empty(t, f.cart.Get(ctx))

	require.NoError(t, f.cart.Add(ctx, mug))
	assert.Equal(t, []models.LineItem{mug}, f.cart.Get(ctx))
}
