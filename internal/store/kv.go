// Package store provides the durable key-value text store consumed by
// the wishlist, with file, sqlite and postgres backends.
package store

import "context"

// KV is a single-key-granularity text store. Load reports ok=false when
// the key has never been saved; that is not an error.
type KV interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
	Close() error
}
