// Package kv is the key-value layer under the local backend. Values are
// opaque bytes.
package kv

import (
	"context"

	"storefront/internal/errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a byte-oriented key-value engine.
type Store interface {
	// Get returns the value under key or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the engine.
	Close() error
}
