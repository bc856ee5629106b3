// Package kvstore is the opaque key-value storage behind the invoice
// gateway: get, set, delete and scan-by-prefix over JSON byte values.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("key not found")

// Store is a string-keyed byte store. Implementations must be safe for
// concurrent use; concurrent Sets on the same key race and the last one wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set fully overwrites the value stored at key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete is idempotent: deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// GetByPrefix returns every value whose key starts with prefix, in no
	// particular order.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Close() error
}
