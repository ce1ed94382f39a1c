// Package storage is the typed, JSON-encoding layer over the raw key-value
// repository. Every other component reaches durable state through it.
//
// Reads fail soft: an absent key, a JSON null, an unreadable repository or a
// value that does not decode all come back as "absent". The store is shared,
// untrusted state that may have been hand-edited or half written.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/repositories/kv"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// Durable keys.
const (
	KeyUsers      = "users"
	KeySession    = "loggedInUser"
	CartKeyPrefix = "cart_"
)

// CartKey is the key of the cart owned by email. It is the only place the
// per-user key is built.
func CartKey(email string) string {
	return CartKeyPrefix + email
}

// Adapter encodes values as JSON on top of a kv.Repository.
type Adapter struct {
	repo kv.Repository
	log  logging.Logger
}

func New(repo kv.Repository, log logging.Logger) *Adapter {
	return &Adapter{repo: repo, log: log}
}

// Read returns the value stored under key decoded as T, or (zero, false).
func Read[T any](ctx context.Context, a *Adapter, key string) (T, bool) {
	var zero T

	raw, err := a.repo.Get(ctx, key)
	if err != nil {
		a.log.Warn(ctx, "local storage read failed", "key", key, "error", err)
		return zero, false
	}
	if raw == nil {
		return zero, false
	}

	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		a.log.Warn(ctx, "local storage value is not valid JSON, treating as absent", "key", key, "error", err)
		return zero, false
	}
	if v == nil {
		return zero, false
	}
	return *v, true
}

type validator interface {
	Valid() bool
}

// ReadList reads a JSON array under key. Each element is decoded on its own;
// elements that do not decode or fail Valid are dropped and the rest kept.
// The result is never nil.
func ReadList[T validator](ctx context.Context, a *Adapter, key string) []T {
	raws, _ := Read[[]json.RawMessage](ctx, a, key)

	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var it T
		if err := json.Unmarshal(raw, &it); err != nil {
			a.log.Warn(ctx, "dropped undecodable record", "key", key, "index", i, "error", err)
			continue
		}
		if !it.Valid() {
			a.log.Warn(ctx, "dropped invalid record", "key", key, "index", i)
			continue
		}
		out = append(out, it)
	}
	return out
}

// Write JSON-encodes v and stores it under key.
func (a *Adapter) Write(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := a.repo.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if err := a.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys starting with prefix, sorted.
func (a *Adapter) Keys(ctx context.Context, prefix string) []string {
	all, err := a.repo.List(ctx)
	if err != nil {
		a.log.Warn(ctx, "local storage list failed", "error", err)
		return nil
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns every pair. Values that are not valid JSON are exported as
// JSON strings so the dump itself stays well-formed.
func (a *Adapter) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	all, err := a.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	out := make(map[string]json.RawMessage, len(all))
	for k, v := range all {
		if json.Valid(v) {
			out[k] = json.RawMessage(v)
			continue
		}
		quoted, _ := json.Marshal(string(v))
		out[k] = quoted
	}
	return out, nil
}

type replacer interface {
	Replace(ctx context.Context, pairs map[string][]byte) error
}

// Restore replaces the whole store with pairs. Repositories that can swap
// atomically do so; others are cleared and refilled.
func (a *Adapter) Restore(ctx context.Context, pairs map[string]json.RawMessage) error {
	raw := make(map[string][]byte, len(pairs))
	for k, v := range pairs {
		raw[k] = []byte(v)
	}

	if r, ok := a.repo.(replacer); ok {
		if err := r.Replace(ctx, raw); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
		return nil
	}

	if err := a.repo.Clear(ctx); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	for k, v := range raw {
		if err := a.repo.Set(ctx, k, v); err != nil {
			return fmt.Errorf("restore: %w", err)
		}
	}
	return nil
}
