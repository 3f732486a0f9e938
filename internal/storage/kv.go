// Package storage provides the persistence layer: a small key-value
// abstraction with in-memory and SQLite backends, and the ContentStore
// that keeps generated life skill modules in it.
package storage

import "context"

// KeyValueStore is a minimal string-blob store. Implementations must be
// safe for concurrent use.
type KeyValueStore interface {
	// Get returns the value for key. The second return is false when the
	// key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes value under key, replacing any existing value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
