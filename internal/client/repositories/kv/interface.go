// Package kv is the raw, string-keyed byte store behind the storefront's
// local storage: the Go counterpart of a browser's localStorage.
//
// Values are opaque bytes here; encoding lives one layer up in
// internal/client/storage.
package kv

import (
	"context"
)

// Repository is an untyped key-value store.
//
// Get returns (nil, nil) for an absent key. Delete of an absent key is not an
// error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
