package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// fixture wires the three services over one in-memory store.
type fixture struct {
	repo    *kv.MemoryRepository
	store   *storage.Adapter
	users   *UserDirectory
	session *SessionManager
	cart    *CartStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := kv.NewMemoryRepository()
	store := storage.New(repo, logging.Nop())
	session := NewSessionManager(store, logging.Nop())
	return &fixture{
		repo:    repo,
		store:   store,
		users:   NewUserDirectory(store, logging.Nop()),
		session: session,
		cart:    NewCartStore(store, session, logging.Nop()),
	}
}

// counter returns a Listener and a pointer to how many times it ran.
func counter() (Listener, *int) {
	n := 0
	return func(context.Context) { n++ }, &n
}
