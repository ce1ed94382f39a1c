package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// identitySource is the part of SessionManager the cart needs.
type identitySource interface {
	Current(ctx context.Context) (models.Identity, bool)
}

// CartStore keeps one ordered cart per email under storage.CartKey. The
// visible cart is always the one of the current session; guests have none.
type CartStore struct {
	store     *storage.Adapter
	session   identitySource
	log       logging.Logger
	listeners []Listener
}

func NewCartStore(store *storage.Adapter, session identitySource, log logging.Logger) *CartStore {
	return &CartStore{store: store, session: session, log: log}
}

// OnChange registers a dependent run after every successful mutation.
func (c *CartStore) OnChange(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Get returns the current user's cart; empty for a guest or an unsaved cart.
func (c *CartStore) Get(ctx context.Context) []models.LineItem {
	id, ok := c.session.Current(ctx)
	if !ok {
		return []models.LineItem{}
	}
	return storage.ReadList[models.LineItem](ctx, c.store, storage.CartKey(id.Email))
}

// Add appends item to the current user's cart. A guest gets
// common.ErrNotLoggedIn and nothing is stored.
func (c *CartStore) Add(ctx context.Context, item models.LineItem) error {
	id, ok := c.session.Current(ctx)
	if !ok {
		return common.ErrNotLoggedIn
	}
	if !item.Valid() {
		return common.ErrInvalidLineItem
	}

	key := storage.CartKey(id.Email)
	cart := append(storage.ReadList[models.LineItem](ctx, c.store, key), item)
	if err := c.store.Write(ctx, key, cart); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}

	c.log.Debug(ctx, "item added", "email", id.Email, "item", item.Name, "items", len(cart))
	c.notify(ctx)
	return nil
}

// RemoveAt deletes the item at index, keeping the order of the rest. An index
// outside the cart is ignored and reported as (false, nil): it usually comes
// from a view rendered before the cart changed.
func (c *CartStore) RemoveAt(ctx context.Context, index int) (bool, error) {
	id, ok := c.session.Current(ctx)
	if !ok {
		return false, nil
	}

	key := storage.CartKey(id.Email)
	cart := storage.ReadList[models.LineItem](ctx, c.store, key)
	if index < 0 || index >= len(cart) {
		return false, nil
	}

	cart = slices.Delete(cart, index, index+1)
	if err := c.store.Write(ctx, key, cart); err != nil {
		return false, fmt.Errorf("remove from cart: %w", err)
	}

	c.log.Debug(ctx, "item removed", "email", id.Email, "index", index, "items", len(cart))
	c.notify(ctx)
	return true, nil
}

func (c *CartStore) notify(ctx context.Context) {
	for _, l := range c.listeners {
		l(ctx)
	}
}
