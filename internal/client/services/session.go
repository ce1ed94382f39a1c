package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Listener is notified synchronously after a state change.
type Listener func(ctx context.Context)

// SessionManager owns the single authenticated identity. SetCurrent is the
// only code path that writes storage.KeySession.
type SessionManager struct {
	store     *storage.Adapter
	log       logging.Logger
	listeners []Listener
}

func NewSessionManager(store *storage.Adapter, log logging.Logger) *SessionManager {
	return &SessionManager{store: store, log: log}
}

// OnChange registers a dependent. Listeners run in registration order after
// every successful SetCurrent.
func (m *SessionManager) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Current returns the signed-in identity; false means guest.
func (m *SessionManager) Current(ctx context.Context) (models.Identity, bool) {
	id, ok := storage.Read[models.Identity](ctx, m.store, storage.KeySession)
	if !ok || !id.Valid() {
		return models.Identity{}, false
	}
	return id, true
}

// SetCurrent persists id as the session, or clears it when id is nil, then
// notifies every listener.
func (m *SessionManager) SetCurrent(ctx context.Context, id *models.Identity) error {
	if id == nil {
		if err := m.store.Remove(ctx, storage.KeySession); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		m.log.Info(ctx, "signed out")
	} else {
		if !id.Valid() {
			return common.ErrInvalidIdentity
		}
		if err := m.store.Write(ctx, storage.KeySession, *id); err != nil {
			return fmt.Errorf("set session: %w", err)
		}
		m.log.Info(ctx, "signed in", "email", id.Email)
	}

	for _, l := range m.listeners {
		l(ctx)
	}
	return nil
}
