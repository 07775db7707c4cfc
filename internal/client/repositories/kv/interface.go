package kv

import (
	"context"
)

// Repository is a flat key/value store.
type Repository interface {
	// Get returns the value stored at key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns every stored pair.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every key.
	Clear(ctx context.Context) error

	// Rename atomically moves the value at from to to, overwriting to.
	// It returns common.ErrorNotFound when from is absent.
	Rename(ctx context.Context, from, to string) error
}
